package idea

import (
	"encoding/binary"
	"fmt"

	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
)

// Key is a 128-bit cipher key, big-endian.
type Key [KeySize]byte

// Schedule is an ordered list of subkeys: six per full round followed by the
// four subkeys of the output transformation.
type Schedule [ScheduleLen]uint16

// KeyFromVector converts a 128-bit vector into a Key.
func KeyFromVector(v bitstring.Vector) (Key, error) {
	var k Key
	if v.Len() != KeyBits {
		return k, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidKeyLength, v.Len(), KeyBits)
	}
	b, err := v.Bytes()
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// KeyFromBytes converts a 16-byte slice into a Key.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: got %d bits, want %d", ErrInvalidKeyLength, 8*len(b), KeyBits)
	}
	copy(k[:], b)
	return k, nil
}

// Vector returns the bits of k.
func (k Key) Vector() bitstring.Vector {
	return bitstring.FromBytes(k[:])
}

// EncryptionSchedule derives the 52 encryption subkeys of key. Eight words are
// read off the key, the key is rotated left by 25 bits, and so on until 52
// words have been taken.
func EncryptionSchedule(key Key) Schedule {
	var z Schedule
	hi := binary.BigEndian.Uint64(key[:8])
	lo := binary.BigEndian.Uint64(key[8:])

	n := 0
	for i := 0; i < scheduleExtractions && n < ScheduleLen; i++ {
		for j := 0; j < wordsPerKey && n < ScheduleLen; j++ {
			z[n] = keyWord(hi, lo, j)
			n++
		}
		hi, lo = rotateKey(hi, lo, keyRotation)
	}
	return z
}

// keyWord returns the j-th 16-bit word of the 128-bit value hi||lo.
func keyWord(hi, lo uint64, j int) uint16 {
	half := hi
	if j >= wordsPerKey/2 {
		half = lo
		j -= wordsPerKey / 2
	}
	return uint16(half >> uint(64-WordBits*(j+1)))
}

// rotateKey rotates the 128-bit value hi||lo left by k bits.
func rotateKey(hi, lo uint64, k uint) (uint64, uint64) {
	k %= KeyBits
	if k >= 64 {
		hi, lo = lo, hi
		k -= 64
	}
	if k == 0 {
		return hi, lo
	}
	return hi<<k | lo>>(64-k), lo<<k | hi>>(64-k)
}

// DecryptionSchedule derives the decryption subkeys from an encryption
// schedule. Rounds are replayed back to front with their multiplicative keys
// inverted, their additive keys negated, and the MA-structure keys kept as is.
func DecryptionSchedule(enc Schedule, conv MulConvention) Schedule {
	var d Schedule
	for i := 0; i < Rounds; i++ {
		w := decryptionWindow(&enc, i, conv)
		copy(d[i*SubkeysPerRound:], w[:])
	}
	o := Rounds * SubkeysPerRound
	d[o] = MulInverse(enc[0], conv)
	d[o+1] = AddInverse(enc[1])
	d[o+2] = AddInverse(enc[2])
	d[o+3] = MulInverse(enc[3], conv)
	return d
}

// decryptionWindow returns the six decryption subkeys of decryption round i.
// They are read from the encryption schedule at 46-6i: the MA keys of
// encryption round 7-i, then the four input keys of the round after it (the
// output transformation when i is 0). The two additive keys trade places
// except when i is 0, where the output transformation had no swap to undo.
func decryptionWindow(enc *Schedule, i int, conv MulConvention) [SubkeysPerRound]uint16 {
	lower := lastRoundWindow - SubkeysPerRound*i
	first, second := lower+4, lower+3
	if i == 0 {
		first, second = lower+3, lower+4
	}
	return [SubkeysPerRound]uint16{
		MulInverse(enc[lower+2], conv),
		AddInverse(enc[first]),
		AddInverse(enc[second]),
		MulInverse(enc[lower+5], conv),
		enc[lower],
		enc[lower+1],
	}
}
