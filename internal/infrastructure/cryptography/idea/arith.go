package idea

import (
	"fmt"
	"strings"
)

// MulConvention selects how the 16-bit word 0 is read by Mul and MulInverse.
type MulConvention int

const (
	// ZeroAsTwoToSixteen reads 0 as 2^16. Multiplication is then a bijection
	// on 16-bit words and 0 is its own inverse.
	ZeroAsTwoToSixteen MulConvention = iota

	// ZeroLiteral multiplies 0 as the number zero. Any product with a zero
	// operand is 0, which is not invertible, and MulInverse(0) is 1 because
	// the extended Euclid loop exits before its first step.
	ZeroLiteral
)

// DefaultMulConvention is the convention used when none is given.
const DefaultMulConvention = ZeroAsTwoToSixteen

// String returns the configuration name of c.
func (c MulConvention) String() string {
	switch c {
	case ZeroAsTwoToSixteen:
		return "textbook"
	case ZeroLiteral:
		return "literal"
	default:
		return fmt.Sprintf("MulConvention(%d)", int(c))
	}
}

// ParseMulConvention maps a configuration name ("textbook" or "literal") to
// its convention. The empty string selects DefaultMulConvention.
func ParseMulConvention(name string) (MulConvention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultMulConvention, nil
	case "textbook":
		return ZeroAsTwoToSixteen, nil
	case "literal":
		return ZeroLiteral, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMulConvention, name)
	}
}

// Xor returns a ^ b.
func Xor(a, b uint16) uint16 {
	return a ^ b
}

// Add returns (a + b) mod 2^16.
func Add(a, b uint16) uint16 {
	return uint16((uint32(a) + uint32(b)) % addModulus)
}

// AddInverse returns (2^16 - a) mod 2^16.
func AddInverse(a uint16) uint16 {
	return uint16((addModulus - uint32(a)) % addModulus)
}

// Mul returns (a * b) mod 2^16+1 under conv. A result of 2^16 is stored as 0,
// which under ZeroLiteral is the only way it fits in a word.
func Mul(a, b uint16, conv MulConvention) uint16 {
	x, y := uint64(a), uint64(b)
	if conv == ZeroAsTwoToSixteen {
		if x == 0 {
			x = addModulus
		}
		if y == 0 {
			y = addModulus
		}
	}
	return uint16(x * y % mulModulus)
}

// MulInverse returns the inverse of a modulo 2^16+1 under conv.
func MulInverse(a uint16, conv MulConvention) uint16 {
	v := int64(a)
	if conv == ZeroAsTwoToSixteen && v == 0 {
		v = addModulus
	}
	return uint16(extendedEuclid(v, mulModulus))
}

// extendedEuclid returns x with a*x ≡ 1 (mod m) for a coprime to m. For a
// of 0 or 1 the loop does not run and the result is 1.
func extendedEuclid(a, m int64) int64 {
	m0 := m
	x, y := int64(1), int64(0)
	for a > 1 {
		q := a / m
		a, m = m, a%m
		x, y = y, x-q*y
	}
	if x < 0 {
		x += m0
	}
	return x
}
