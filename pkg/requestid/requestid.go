// Package requestid generates compact request identifiers by encoding a
// sequential 64-bit counter into a short URL-safe ASCII string.
//
// Every character carries 6 bits, so the narrow 6-character form covers 36
// bits of counter space (~68 billion IDs) and the wide 11-character form
// covers the full 64 bits. Encoding is allocation-free and the generator
// issues counter values with a single atomic add, which makes this suitable
// for per-request hot paths where UUID-style IDs are too slow or too long.
//
// IDs are unique per generator instance, not globally: uniqueness comes from
// the counter, not from randomness. The mixed mode scrambles the counter
// through a bijective finalizer so consecutive IDs look unrelated, but it
// adds no entropy and must not be mistaken for unguessability.
package requestid

import (
	"fmt"
	"unsafe"
)

// Alphabet is the 64-character URL-safe alphabet used for encoding. Each
// character encodes one 6-bit group of the value. Index 0 is 'A', so unused
// high bits render as trailing 'A' characters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	// WidthNarrow is the default 6-character width covering 36 bits.
	WidthNarrow = 6

	// WidthWide is the 11-character width covering all 64 bits. The last
	// character holds only bits 60..63, so the top 2 of its 6 bits are
	// always zero and its alphabet index is always below 16.
	WidthWide = 11
)

// ID is an encoded identifier of up to WidthWide characters. It is a plain
// value: comparable, copyable, and never mutated after encoding. All bytes
// are characters of Alphabet, so the content is always valid ASCII.
type ID struct {
	buf [WidthWide]byte
	n   uint8
}

// Len returns the number of encoded characters.
func (id ID) Len() int { return int(id.n) }

// String returns the ID as an owned string. It allocates once.
func (id ID) String() string { return string(id.buf[:id.n]) }

// View returns the ID as a string without copying. The returned string
// aliases the ID's buffer, which holds only Alphabet characters and is
// never written after encoding. The view is only valid while the
// pointed-to ID is alive; use String for a value that outlives the ID.
func (id *ID) View() string {
	if id.n == 0 {
		return ""
	}
	return unsafe.String(&id.buf[0], int(id.n))
}

// Bytes returns the encoded characters as a slice aliasing the ID's buffer.
// The slice must not be modified.
func (id *ID) Bytes() []byte { return id.buf[:id.n] }

// Encode encodes the low 36 bits of n as a 6-character ID. Character 0 holds
// the least significant 6 bits, so the first character changes on every
// increment and carries roll rightward: 1 is "BAAAAA", 64 is "ABAAAA".
func Encode(n uint64) ID { return encode(n, WidthNarrow) }

// EncodeWide encodes all 64 bits of n as an 11-character ID. See WidthWide
// for the unused bits in the final character.
func EncodeWide(n uint64) ID { return encode(n, WidthWide) }

// EncodeWidth encodes n at an explicit width between 1 and WidthWide
// characters. Widths 1 through 10 capture exactly width*6 bits; width 11 is
// the wide mode. Any other width is a programming error and is rejected.
//
// A future width scheme could pack exactly 64 bits into fewer characters by
// giving characters unequal bit counts; the uniform 6-bit split is kept here
// because it preserves the per-character carry behavior tests rely on.
func EncodeWidth(n uint64, width int) (ID, error) {
	if width < 1 || width > WidthWide {
		return ID{}, fmt.Errorf("requestid: width must be between 1 and %d, got %d", WidthWide, width)
	}
	return encode(n, width), nil
}

// encode fills one character per 6-bit group, least significant group first.
// width must already be validated.
func encode(n uint64, width int) ID {
	var id ID
	id.n = uint8(width)
	for i := 0; i < width; i++ {
		id.buf[i] = Alphabet[(n>>(6*i))&0x3F]
	}
	return id
}

// Mix scrambles n through a fixed, invertible finalizer with strong
// avalanche behavior: multiply by 0x9e3779b97f4a7c15, xor-shift right 30,
// multiply by 0xbf58476d1ce4e5b9, xor-shift right 27. Both multipliers are
// odd and xor-shifts are invertible, so Mix is a bijection on uint64 and
// mixed IDs collide exactly when the plain counter values would. The
// constants are part of the public contract; output is reproducible across
// processes and versions. No inverse is exposed.
func Mix(n uint64) uint64 {
	x := n * 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	return x
}
