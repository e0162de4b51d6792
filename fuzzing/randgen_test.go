package fuzzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "0xdeadbeef", EncodeHex([]byte{0xde, 0xad, 0xbe, 0xef}))
	assert.Equal(t, "0x00", EncodeHex([]byte{0}))
	assert.Equal(t, "0x", EncodeHex(nil), "empty buffers still render a prefix")
}
