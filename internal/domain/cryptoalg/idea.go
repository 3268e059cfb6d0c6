package cryptoalg

import "github.com/ujwal-s-r/system-design/internal/pkg/bitstring"

// IDEAProcessor handles IDEA block encryption on bit vectors.
// Blocks are exactly 64 bits and keys exactly 128 bits.
type IDEAProcessor interface {
	// GenerateKey returns a uniformly random 128-bit key.
	GenerateKey() (bitstring.Vector, error)

	// Encrypt enciphers one 64-bit block under a 128-bit key.
	Encrypt(block, key bitstring.Vector) (bitstring.Vector, error)

	// Decrypt inverts Encrypt for the same key.
	Decrypt(block, key bitstring.Vector) (bitstring.Vector, error)
}
