//go:build unit
// +build unit

package idea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, uint16(3), Add(1, 2))
	assert.Equal(t, uint16(0), Add(0xffff, 1))
	assert.Equal(t, uint16(0xfffe), Add(0xffff, 0xffff))
}

func TestXor(t *testing.T) {
	assert.Equal(t, uint16(0x0ff0), Xor(0xffff, 0xf00f))
	assert.Equal(t, uint16(0), Xor(0x1234, 0x1234))
}

func TestAddInverse(t *testing.T) {
	assert.Equal(t, uint16(0), AddInverse(0))
	assert.Equal(t, uint16(0xffff), AddInverse(1))
	assert.Equal(t, uint16(0x8000), AddInverse(0x8000))

	for a := 0; a <= math.MaxUint16; a++ {
		w := uint16(a)
		require.Equal(t, w, AddInverse(AddInverse(w)), "a=%d", a)
		require.Equal(t, uint16(0), Add(w, AddInverse(w)), "a=%d", a)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b uint16
		conv MulConvention
		want uint16
	}{
		{"small", 3, 5, ZeroAsTwoToSixteen, 15},
		{"reduces", 0x100, 0x101, ZeroAsTwoToSixteen, 0xff},
		{"zero reads as 2^16", 0, 5, ZeroAsTwoToSixteen, 65532},
		{"zero times zero", 0, 0, ZeroAsTwoToSixteen, 1},
		{"zero literal", 0, 5, ZeroLiteral, 0},
		{"zero literal other side", 5, 0, ZeroLiteral, 0},
		{"product 2^16 wraps to zero", 2, 0x8000, ZeroAsTwoToSixteen, 0},
		{"product 2^16 wraps to zero literal", 2, 0x8000, ZeroLiteral, 0},
		{"nonzero operands agree", 0x1234, 0xabcd, ZeroLiteral, 17261},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mul(tt.a, tt.b, tt.conv))
		})
	}
}

func TestMulInverseKnownValues(t *testing.T) {
	tests := []struct {
		a       uint16
		conv    MulConvention
		inverse uint16
	}{
		{1, ZeroAsTwoToSixteen, 1},
		{1, ZeroLiteral, 1},
		{2, ZeroAsTwoToSixteen, 32769},
		{3, ZeroLiteral, 21846},
		{0xffff, ZeroAsTwoToSixteen, 0x8000},
		// 0 stands for 2^16 = -1, its own inverse
		{0, ZeroAsTwoToSixteen, 0},
		// the Euclid loop never runs for 0 and leaves x at 1
		{0, ZeroLiteral, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.inverse, MulInverse(tt.a, tt.conv), "a=%d conv=%s", tt.a, tt.conv)
	}
}

func TestMulInverseTextbookIsInvolution(t *testing.T) {
	for a := 0; a <= math.MaxUint16; a++ {
		w := uint16(a)
		inv := MulInverse(w, ZeroAsTwoToSixteen)
		require.Equal(t, uint16(1), Mul(w, inv, ZeroAsTwoToSixteen), "a=%d", a)
		require.Equal(t, w, MulInverse(inv, ZeroAsTwoToSixteen), "a=%d", a)
	}
}

func TestMulInverseLiteralIsInvolutionAwayFromZero(t *testing.T) {
	for a := 1; a <= math.MaxUint16; a++ {
		w := uint16(a)
		inv := MulInverse(w, ZeroLiteral)
		require.Equal(t, w, MulInverse(inv, ZeroLiteral), "a=%d", a)
	}
	// the inverse of a nonzero word is never 2^16, so it always fits
	assert.Equal(t, uint16(2), MulInverse(0x8001, ZeroLiteral))
}

func TestParseMulConvention(t *testing.T) {
	tests := []struct {
		name    string
		want    MulConvention
		wantErr bool
	}{
		{"", DefaultMulConvention, false},
		{"textbook", ZeroAsTwoToSixteen, false},
		{" Literal ", ZeroLiteral, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMulConvention(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMulConvention)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMulConventionString(t *testing.T) {
	assert.Equal(t, "textbook", ZeroAsTwoToSixteen.String())
	assert.Equal(t, "literal", ZeroLiteral.String())
	assert.Equal(t, "MulConvention(7)", MulConvention(7).String())
}
