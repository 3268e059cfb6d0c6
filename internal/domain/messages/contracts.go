package messages

import "context"

// MessageCipherService encrypts and decrypts eight-byte messages.
type MessageCipherService interface {
	// GenerateKey returns a fresh random 128-bit key.
	GenerateKey(ctx context.Context) (*KeyMaterial, error)

	// EncryptMessage enciphers an eight-byte message. An empty key means a
	// new key is generated and returned in the result.
	EncryptMessage(ctx context.Context, message, key string) (*EncryptedMessage, error)

	// DecryptMessage recovers the message from a 64-bit ciphertext and the
	// 128-bit key it was produced with. Whitespace in either bit string is
	// ignored.
	DecryptMessage(ctx context.Context, ciphertext, key string) (*DecryptedMessage, error)
}
