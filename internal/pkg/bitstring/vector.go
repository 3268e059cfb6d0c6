// Package bitstring implements fixed-width bit vectors written as strings of
// '0' and '1' characters, most significant bit first.
//
// This is the representation the CLI and REST front ends exchange with users:
// a 64-bit block or a 128-bit key is a line of binary digits, zero-padded on
// the left to its full width.
package bitstring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDigit is returned when a string contains something other than
	// binary digits and whitespace.
	ErrInvalidDigit = errors.New("bitstring: invalid binary digit")

	// ErrLengthMismatch is returned when two operands or a split request
	// disagree on width.
	ErrLengthMismatch = errors.New("bitstring: length mismatch")

	// ErrNotByteAligned is returned when a byte conversion is requested for a
	// vector whose width is not a multiple of 8.
	ErrNotByteAligned = errors.New("bitstring: length is not a multiple of 8")

	// ErrTooWide is returned when an integer conversion is requested for a
	// vector wider than 64 bits.
	ErrTooWide = errors.New("bitstring: vector wider than 64 bits")
)

// Vector is an immutable sequence of bits. The zero value is the empty vector.
type Vector struct {
	bits string
}

// Parse reads a vector from its textual form. Spaces, tabs and line breaks are
// ignored so that bit strings pasted across several lines are accepted.
func Parse(s string) (Vector, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '0', '1':
			b.WriteByte(c)
		case ' ', '\t', '\n', '\r':
		default:
			return Vector{}, fmt.Errorf("%w %q at offset %d", ErrInvalidDigit, c, i)
		}
	}
	return Vector{bits: b.String()}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromUint returns the low width bits of v, zero-padded on the left.
func FromUint(v uint64, width int) Vector {
	if width <= 0 {
		return Vector{}
	}
	s := strconv.FormatUint(v, 2)
	if len(s) > width {
		s = s[len(s)-width:]
	}
	return Vector{bits: strings.Repeat("0", width-len(s)) + s}
}

// FromBytes returns the bits of b, eight per byte, most significant first.
func FromBytes(b []byte) Vector {
	var sb strings.Builder
	sb.Grow(8 * len(b))
	for _, c := range b {
		for i := 7; i >= 0; i-- {
			sb.WriteByte('0' + (c>>uint(i))&1)
		}
	}
	return Vector{bits: sb.String()}
}

// Concat joins vectors in order.
func Concat(vs ...Vector) Vector {
	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(v.bits)
	}
	return Vector{bits: sb.String()}
}

// Len returns the width of v in bits.
func (v Vector) Len() int { return len(v.bits) }

// String returns the '0'/'1' form of v.
func (v Vector) String() string { return v.bits }

// Equal reports whether v and o hold the same bits at the same width.
func (v Vector) Equal(o Vector) bool { return v.bits == o.bits }

// OnesCount returns the number of set bits.
func (v Vector) OnesCount() int { return strings.Count(v.bits, "1") }

// Uint returns v as an unsigned integer.
func (v Vector) Uint() (uint64, error) {
	if len(v.bits) > 64 {
		return 0, fmt.Errorf("%w: %d bits", ErrTooWide, len(v.bits))
	}
	if len(v.bits) == 0 {
		return 0, nil
	}
	return strconv.ParseUint(v.bits, 2, 64)
}

// Bytes packs v into bytes, eight bits per byte.
func (v Vector) Bytes() ([]byte, error) {
	if len(v.bits)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrNotByteAligned, len(v.bits))
	}
	out := make([]byte, len(v.bits)/8)
	for i := range out {
		var c byte
		for _, d := range v.bits[8*i : 8*i+8] {
			c = c<<1 | byte(d-'0')
		}
		out[i] = c
	}
	return out, nil
}

// RotateLeft rotates v circularly by k positions. k is reduced modulo the
// width, so any k (including negative values) is accepted.
func (v Vector) RotateLeft(k int) Vector {
	n := len(v.bits)
	if n == 0 {
		return v
	}
	k %= n
	if k < 0 {
		k += n
	}
	return Vector{bits: v.bits[k:] + v.bits[:k]}
}

// Split partitions v into parts contiguous chunks of width bits each.
func (v Vector) Split(parts, width int) ([]Vector, error) {
	if parts < 0 || width < 0 || len(v.bits) != parts*width {
		return nil, fmt.Errorf("%w: cannot split %d bits into %d parts of %d", ErrLengthMismatch, len(v.bits), parts, width)
	}
	out := make([]Vector, parts)
	for i := range out {
		out[i] = Vector{bits: v.bits[i*width : (i+1)*width]}
	}
	return out, nil
}

// XOR returns the bitwise exclusive or of a and b.
func XOR(a, b Vector) (Vector, error) {
	if len(a.bits) != len(b.bits) {
		return Vector{}, fmt.Errorf("%w: %d and %d bits", ErrLengthMismatch, len(a.bits), len(b.bits))
	}
	out := make([]byte, len(a.bits))
	for i := range out {
		if a.bits[i] != b.bits[i] {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return Vector{bits: string(out)}, nil
}

// HammingDistance returns the number of positions at which a and b differ.
func HammingDistance(a, b Vector) (int, error) {
	x, err := XOR(a, b)
	if err != nil {
		return 0, err
	}
	return x.OnesCount(), nil
}
