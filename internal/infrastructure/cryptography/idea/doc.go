// Package idea implements the IDEA block cipher: 64-bit blocks, 128-bit keys,
// eight Lai-Massey rounds followed by an output half-round.
//
// The cipher mixes three group operations on 16-bit words: addition modulo
// 2^16, multiplication modulo 2^16+1 and XOR. Encryption and decryption run
// the same round engine and differ only in the 52-word subkey schedule they
// feed it.
//
// How a zero word enters the multiplication is selectable through
// MulConvention. The default reads 0 as 2^16, which makes every operation
// invertible and matches published IDEA test vectors. ZeroLiteral multiplies
// zero as-is for bit-compatibility with ciphertexts produced by the literal
// rendition; under it some keys and blocks do not round-trip.
//
// All functions are pure and every Cipher is immutable, so concurrent use
// needs no locking.
package idea
