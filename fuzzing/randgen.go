package fuzzing

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeHex renders a buffer as 0x-prefixed hex for reports and case
// dumps.
func EncodeHex(data []byte) string {
	return hexutil.Encode(data)
}

// CanonicalSeed returns the deterministic fallback buffer used when the
// corpus is empty: 64 monotonically valued bytes 0x00..0x3f.
func CanonicalSeed() []byte {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}
