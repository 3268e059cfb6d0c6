package idea

import (
	"encoding/binary"
	"fmt"

	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
)

// Block is a 64-bit block viewed as four 16-bit words, X0 first.
type Block [wordsPerBlock]uint16

// BlockFromBytes reads an 8-byte big-endian block.
func BlockFromBytes(b []byte) (Block, error) {
	var x Block
	if len(b) != BlockSize {
		return x, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidBlockLength, 8*len(b), BlockBits)
	}
	for i := range x {
		x[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return x, nil
}

// BlockFromVector converts a 64-bit vector into a Block.
func BlockFromVector(v bitstring.Vector) (Block, error) {
	if v.Len() != BlockBits {
		return Block{}, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidBlockLength, v.Len(), BlockBits)
	}
	words, err := v.Split(wordsPerBlock, WordBits)
	if err != nil {
		return Block{}, err
	}
	var x Block
	for i, w := range words {
		n, err := w.Uint()
		if err != nil {
			return Block{}, err
		}
		x[i] = uint16(n)
	}
	return x, nil
}

// Bytes returns the big-endian encoding of x.
func (x Block) Bytes() []byte {
	b := make([]byte, BlockSize)
	x.put(b)
	return b
}

func (x Block) put(b []byte) {
	for i, w := range x {
		binary.BigEndian.PutUint16(b[2*i:], w)
	}
}

// Vector returns the 64 bits of x.
func (x Block) Vector() bitstring.Vector {
	words := make([]bitstring.Vector, len(x))
	for i, w := range x {
		words[i] = bitstring.FromUint(uint64(w), WordBits)
	}
	return bitstring.Concat(words...)
}

// Transform runs the eight rounds and the output transformation over x using
// the subkeys in z. Encryption and decryption differ only in the schedule.
func Transform(x Block, z *Schedule, conv MulConvention) Block {
	for r := 0; r < Rounds; r++ {
		w := r * SubkeysPerRound
		x = round(x, z[w:w+SubkeysPerRound], conv, r == Rounds-1)
	}
	return outputTransform(x, z[Rounds*SubkeysPerRound:], conv)
}

// round is one Lai-Massey round. Words 1 and 2 leave the round swapped,
// except on the last round, which leaves them in place for the output
// transformation.
func round(x Block, k []uint16, conv MulConvention, last bool) Block {
	one := Mul(x[0], k[0], conv)
	two := Add(x[1], k[1])
	three := Add(x[2], k[2])
	four := Mul(x[3], k[3], conv)

	five := Xor(one, three)
	six := Xor(two, four)
	seven := Mul(five, k[4], conv)
	eight := Add(six, seven)
	nine := Mul(eight, k[5], conv)
	ten := Add(seven, nine)

	if last {
		return Block{Xor(one, nine), Xor(two, ten), Xor(three, nine), Xor(four, ten)}
	}
	return Block{Xor(one, nine), Xor(three, nine), Xor(two, ten), Xor(four, ten)}
}

func outputTransform(x Block, k []uint16, conv MulConvention) Block {
	return Block{
		Mul(x[0], k[0], conv),
		Add(x[1], k[1]),
		Add(x[2], k[2]),
		Mul(x[3], k[3], conv),
	}
}
