package idea

import (
	"crypto/cipher"

	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
)

// Option configures a Cipher.
type Option func(*options)

type options struct {
	conv MulConvention
}

// WithMulConvention selects the zero handling of the modular multiplication.
func WithMulConvention(conv MulConvention) Option {
	return func(o *options) {
		o.conv = conv
	}
}

func buildOptions(opts []Option) options {
	o := options{conv: DefaultMulConvention}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Cipher holds the encryption and decryption schedules of one key. It is
// never modified after New returns.
type Cipher struct {
	conv MulConvention
	enc  Schedule
	dec  Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// New derives both subkey schedules of key.
func New(key Key, opts ...Option) *Cipher {
	o := buildOptions(opts)
	enc := EncryptionSchedule(key)
	return &Cipher{
		conv: o.conv,
		enc:  enc,
		dec:  DecryptionSchedule(enc, o.conv),
	}
}

// NewCipher returns a cipher.Block for a 16-byte key.
func NewCipher(key []byte, opts ...Option) (cipher.Block, error) {
	k, err := KeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	return New(k, opts...), nil
}

// MulConvention reports the multiplication convention c was built with.
func (c *Cipher) MulConvention() MulConvention { return c.conv }

// EncryptionSchedule returns a copy of the encryption subkeys.
func (c *Cipher) EncryptionSchedule() Schedule { return c.enc }

// DecryptionSchedule returns a copy of the decryption subkeys.
func (c *Cipher) DecryptionSchedule() Schedule { return c.dec }

// EncryptBlock encrypts one block.
func (c *Cipher) EncryptBlock(x Block) Block { return Transform(x, &c.enc, c.conv) }

// DecryptBlock decrypts one block.
func (c *Cipher) DecryptBlock(x Block) Block { return Transform(x, &c.dec, c.conv) }

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. Like the standard library
// ciphers it panics when either buffer is shorter than a block.
func (c *Cipher) Encrypt(dst, src []byte) { c.crypt(dst, src, &c.enc) }

// Decrypt decrypts the first block of src into dst.
func (c *Cipher) Decrypt(dst, src []byte) { c.crypt(dst, src, &c.dec) }

func (c *Cipher) crypt(dst, src []byte, z *Schedule) {
	if len(src) < BlockSize {
		panic("idea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("idea: output not full block")
	}
	x, _ := BlockFromBytes(src[:BlockSize])
	Transform(x, z, c.conv).put(dst[:BlockSize])
}

// Encrypt encrypts a 64-bit block under a 128-bit key. Widths are checked
// before any subkey is derived.
func Encrypt(block, key bitstring.Vector, opts ...Option) (bitstring.Vector, error) {
	x, k, err := parseInputs(block, key)
	if err != nil {
		return bitstring.Vector{}, err
	}
	return New(k, opts...).EncryptBlock(x).Vector(), nil
}

// Decrypt decrypts a 64-bit block under a 128-bit key.
func Decrypt(block, key bitstring.Vector, opts ...Option) (bitstring.Vector, error) {
	x, k, err := parseInputs(block, key)
	if err != nil {
		return bitstring.Vector{}, err
	}
	return New(k, opts...).DecryptBlock(x).Vector(), nil
}

func parseInputs(block, key bitstring.Vector) (Block, Key, error) {
	x, err := BlockFromVector(block)
	if err != nil {
		return Block{}, Key{}, err
	}
	k, err := KeyFromVector(key)
	if err != nil {
		return Block{}, Key{}, err
	}
	return x, k, nil
}
