// Package messages defines the single-block message workflow built on IDEA:
// an eight-byte text message is encoded as a 64-bit block, enciphered under a
// 128-bit key and reported together with the number of bits that changed.
package messages
