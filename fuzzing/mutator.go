// Package fuzzing implements the byte-level mutation engine.
//
// Every operator treats its input as immutable: the caller's slice is never
// written through, each call returns a fresh buffer. Out-of-range positions
// are no-ops that still return a copy, so operators compose freely inside
// Havoc without bounds checks between rounds.
package fuzzing

import (
	"math/rand"
)

// MaxCaseSize is the hard growth ceiling for a fuzz case. InsertRandom
// refuses to grow a buffer past this bound.
const MaxCaseSize = 65536

// MinCaseSize is the shrink floor. DeleteByte refuses to shrink a buffer
// to empty.
const MinCaseSize = 1

// interestingBytes are boundary values known to shake out off-by-one and
// sign-extension bugs.
var interestingBytes = []byte{0, 1, 16, 32, 64, 100, 127, 128, 255}

// Mutator applies randomized byte-level transformations. All randomness
// comes from the injected source, so a fixed seed reproduces the exact
// mutation sequence.
type Mutator struct {
	r *rand.Rand
}

// NewMutator creates a mutator driven by the given random source.
func NewMutator(r *rand.Rand) *Mutator {
	return &Mutator{r: r}
}

func (m *Mutator) rand(n int) int {
	if n <= 0 {
		return 0
	}
	return m.r.Intn(n)
}

// RandByte returns one uniformly random byte.
func (m *Mutator) RandByte() byte {
	return byte(m.r.Intn(256))
}

// RandBytes returns a buffer of n uniformly random bytes.
func (m *Mutator) RandBytes(n int) []byte {
	buf := make([]byte, n)
	m.r.Read(buf)
	return buf
}

func cloneBytes(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// BitFlip flips the bit at absolute bit index pos (byte pos/8, bit pos%8).
// An out-of-range pos returns an unchanged copy.
func (m *Mutator) BitFlip(data []byte, pos int) []byte {
	out := cloneBytes(data)
	if pos < 0 || pos >= len(data)*8 {
		return out
	}
	out[pos/8] ^= 1 << (pos % 8)
	return out
}

// ByteFlip XORs the byte at pos with 0xFF. An out-of-range pos returns an
// unchanged copy.
func (m *Mutator) ByteFlip(data []byte, pos int) []byte {
	out := cloneBytes(data)
	if pos < 0 || pos >= len(data) {
		return out
	}
	out[pos] ^= 0xFF
	return out
}

// InsertRandom inserts one random byte at pos, clamped to [0, len(data)].
// Buffers already at MaxCaseSize are returned unchanged.
func (m *Mutator) InsertRandom(data []byte, pos int) []byte {
	if len(data) >= MaxCaseSize {
		return cloneBytes(data)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(data) {
		pos = len(data)
	}
	out := make([]byte, 0, len(data)+1)
	out = append(out, data[:pos]...)
	out = append(out, m.RandByte())
	out = append(out, data[pos:]...)
	return out
}

// DeleteByte removes the byte at pos, clamped to [0, len(data)-1]. Buffers
// of MinCaseSize or smaller are returned unchanged.
func (m *Mutator) DeleteByte(data []byte, pos int) []byte {
	if len(data) <= MinCaseSize {
		return cloneBytes(data)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(data)-1 {
		pos = len(data) - 1
	}
	out := make([]byte, 0, len(data)-1)
	out = append(out, data[:pos]...)
	out = append(out, data[pos+1:]...)
	return out
}

// ReplaceInteresting overwrites the byte at pos with a random value from
// the interesting set. An out-of-range pos returns an unchanged copy.
func (m *Mutator) ReplaceInteresting(data []byte, pos int) []byte {
	out := cloneBytes(data)
	if pos < 0 || pos >= len(data) {
		return out
	}
	out[pos] = interestingBytes[m.rand(len(interestingBytes))]
	return out
}

// Havoc applies 1-8 rounds of randomly chosen operators, each with a fresh
// position drawn against the current buffer length. It is the fallback for
// any strategy without a dedicated generator.
func (m *Mutator) Havoc(data []byte) []byte {
	out := cloneBytes(data)
	rounds := 1 + m.rand(8)
	for i := 0; i < rounds; i++ {
		switch m.rand(5) {
		case 0:
			out = m.BitFlip(out, m.rand(len(out)*8))
		case 1:
			out = m.ByteFlip(out, m.rand(len(out)))
		case 2:
			out = m.InsertRandom(out, m.rand(len(out)+1))
		case 3:
			out = m.DeleteByte(out, m.rand(len(out)))
		case 4:
			out = m.ReplaceInteresting(out, m.rand(len(out)))
		}
	}
	return out
}
