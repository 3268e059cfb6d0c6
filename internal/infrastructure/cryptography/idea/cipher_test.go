//go:build unit
// +build unit

package idea

import (
	"crypto/cipher"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
)

func vec(hex uint64) bitstring.Vector { return bitstring.FromUint(hex, BlockBits) }

func key128(hi, lo uint64) bitstring.Vector {
	return bitstring.Concat(bitstring.FromUint(hi, 64), bitstring.FromUint(lo, 64))
}

func TestEncryptGoldenVectors(t *testing.T) {
	tests := []struct {
		name       string
		key        bitstring.Vector
		plain      uint64
		conv       MulConvention
		ciphertext uint64
	}{
		{"sequential key", key128(0x0001000200030004, 0x0005000600070008), 0x0000000100020003, ZeroAsTwoToSixteen, 0x11fbed2b01986de5},
		{"sequential key literal", key128(0x0001000200030004, 0x0005000600070008), 0x0000000100020003, ZeroLiteral, 0xd7fb581621bcb3aa},
		{"zero key zero block", key128(0, 0), 0, ZeroAsTwoToSixteen, 0x0001000100000000},
		{"zero key zero block literal", key128(0, 0), 0, ZeroLiteral, 0},
		{"byte counter key", key128(0x0001020304050607, 0x08090a0b0c0d0e0f), 0x0123456789abcdef, ZeroAsTwoToSixteen, 0xfed705a84668ae52},
		{"all ones", key128(^uint64(0), ^uint64(0)), ^uint64(0), ZeroAsTwoToSixteen, 0xcd1ab2c1211041fb},
		{"no zero subkeys", key128(0x2bd6459f82c5b300, 0x952c49104881ff48), 0x6c616c616c616e64, ZeroAsTwoToSixteen, 0xe096ef2dcc3364c0},
		{"no zero subkeys literal", key128(0x2bd6459f82c5b300, 0x952c49104881ff48), 0x6c616c616c616e64, ZeroLiteral, 0xe096ef2dcc3364c0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(vec(tt.plain), tt.key, WithMulConvention(tt.conv))
			require.NoError(t, err)
			assert.Equal(t, vec(tt.ciphertext).String(), got.String())
		})
	}
}

func TestDecryptPublishedVector(t *testing.T) {
	key := key128(0x0001000200030004, 0x0005000600070008)
	got, err := Decrypt(vec(0x11fbed2b01986de5), key)
	require.NoError(t, err)
	assert.Equal(t, vec(0x0000000100020003), got)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		block := vec(rng.Uint64())
		key := key128(rng.Uint64(), rng.Uint64())

		ct, err := Encrypt(block, key)
		require.NoError(t, err)
		pt, err := Decrypt(ct, key)
		require.NoError(t, err)
		require.Equal(t, block, pt, "block=%s key=%s", block, key)
	}
}

func TestRoundTripWithZeroWords(t *testing.T) {
	blocks := []uint64{0, 0x0000ffff0000ffff, 0x0123456789abcdef, ^uint64(0)}
	keys := []bitstring.Vector{key128(0, 0), key128(0, 1), key128(0x0001000200030004, 0x0005000600070008)}

	for _, b := range blocks {
		for _, k := range keys {
			ct, err := Encrypt(vec(b), k)
			require.NoError(t, err)
			pt, err := Decrypt(ct, k)
			require.NoError(t, err)
			assert.Equal(t, vec(b), pt, "block=%016x key=%s", b, k)
		}
	}
}

func TestLiteralZeroDoesNotRoundTripUnderZeroKey(t *testing.T) {
	key := key128(0, 0)
	opt := WithMulConvention(ZeroLiteral)

	ct, err := Encrypt(vec(0x0123456789abcdef), key, opt)
	require.NoError(t, err)
	assert.Equal(t, vec(0x000089ab45670000), ct)

	pt, err := Decrypt(ct, key, opt)
	require.NoError(t, err)
	assert.Equal(t, vec(0x0000456789ab0000), pt)
}

func TestLiteralZeroRoundTripsOnPublishedKey(t *testing.T) {
	key := key128(0x0001000200030004, 0x0005000600070008)
	opt := WithMulConvention(ZeroLiteral)

	pt, err := Decrypt(vec(0xd7fb581621bcb3aa), key, opt)
	require.NoError(t, err)
	assert.Equal(t, vec(0x0000000100020003), pt)
}

func TestLengthEnforcement(t *testing.T) {
	goodBlock := vec(0)
	goodKey := key128(0, 0)

	tests := []struct {
		name    string
		block   bitstring.Vector
		key     bitstring.Vector
		wantErr error
	}{
		{"63-bit block", bitstring.FromUint(0, 63), goodKey, ErrInvalidBlockLength},
		{"65-bit block", bitstring.FromUint(0, 65), goodKey, ErrInvalidBlockLength},
		{"empty block", bitstring.Vector{}, goodKey, ErrInvalidBlockLength},
		{"127-bit key", goodBlock, bitstring.FromUint(0, 127), ErrInvalidKeyLength},
		{"129-bit key", goodBlock, bitstring.FromUint(0, 129), ErrInvalidKeyLength},
		{"both wrong reports the block", bitstring.FromUint(0, 8), bitstring.FromUint(0, 8), ErrInvalidBlockLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encrypt(tt.block, tt.key)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = Decrypt(tt.block, tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncryptIsDeterministic(t *testing.T) {
	key := key128(0xcca86c95d579197e, 0xec83352b066e933c)
	block := bitstring.FromText("lalaland")

	first, err := Encrypt(block, key)
	require.NoError(t, err)
	second, err := Encrypt(block, key)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEightCharacterMessage(t *testing.T) {
	key := key128(0xcca86c95d579197e, 0xec83352b066e933c)
	block := bitstring.FromText("lalaland")

	ct, err := Encrypt(block, key)
	require.NoError(t, err)
	assert.Equal(t, "1001100111101010011011000101101111001011101100010011100010011101", ct.String())

	changed, err := bitstring.HammingDistance(block, ct)
	require.NoError(t, err)
	assert.Equal(t, 32, changed)

	pt, err := Decrypt(ct, key)
	require.NoError(t, err)
	text, err := pt.Text()
	require.NoError(t, err)
	assert.Equal(t, "lalaland", text)
}

func TestNewCipherImplementsBlock(t *testing.T) {
	c, err := NewCipher(sequentialKey[:])
	require.NoError(t, err)
	assert.Implements(t, (*cipher.Block)(nil), c)
	assert.Equal(t, BlockSize, c.BlockSize())

	src := []byte{0, 0, 0, 1, 0, 2, 0, 3}
	dst := make([]byte, BlockSize)
	c.Encrypt(dst, src)
	assert.Equal(t, []byte{0x11, 0xfb, 0xed, 0x2b, 0x01, 0x98, 0x6d, 0xe5}, dst)

	// in-place decryption
	c.Decrypt(dst, dst)
	assert.Equal(t, src, dst)

	_, err = NewCipher(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestCipherPanicsOnShortBuffers(t *testing.T) {
	c := New(sequentialKey)
	assert.Panics(t, func() { c.Encrypt(make([]byte, 8), make([]byte, 7)) })
	assert.Panics(t, func() { c.Decrypt(make([]byte, 7), make([]byte, 8)) })
}

func TestCipherExposesSchedules(t *testing.T) {
	c := New(sequentialKey)
	assert.Equal(t, DefaultMulConvention, c.MulConvention())
	assert.Equal(t, sequentialEncryptionSchedule, c.EncryptionSchedule())
	assert.Equal(t, sequentialDecryptionSchedule, c.DecryptionSchedule())

	// callers receive copies
	z := c.EncryptionSchedule()
	z[0] = 0xbeef
	assert.Equal(t, sequentialEncryptionSchedule, c.EncryptionSchedule())

	lit := New(sequentialKey, WithMulConvention(ZeroLiteral))
	assert.Equal(t, ZeroLiteral, lit.MulConvention())
}

func TestCipherConcurrentUse(t *testing.T) {
	c := New(sequentialKey)
	want := Block{0x11fb, 0xed2b, 0x0198, 0x6de5}

	var wg sync.WaitGroup
	results := make([]Block, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.EncryptBlock(Block{0, 1, 2, 3})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
