package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ujwal-s-r/system-design/internal/domain/cryptoalg"
	"github.com/ujwal-s-r/system-design/internal/domain/messages"
	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
	"github.com/ujwal-s-r/system-design/internal/pkg/logger"
)

// messageCipherService implements the MessageCipherService interface on top of an IDEA processor
type messageCipherService struct {
	ideaProcessor cryptoalg.IDEAProcessor
	logger        logger.Logger
}

// NewMessageCipherService creates a new messageCipherService instance
func NewMessageCipherService(ideaProcessor cryptoalg.IDEAProcessor, logger logger.Logger) (messages.MessageCipherService, error) {
	if ideaProcessor == nil {
		return nil, fmt.Errorf("IDEA processor cannot be nil")
	}
	return &messageCipherService{
		ideaProcessor: ideaProcessor,
		logger:        logger,
	}, nil
}

// GenerateKey returns a fresh random 128-bit key.
func (s *messageCipherService) GenerateKey(ctx context.Context) (*messages.KeyMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := s.ideaProcessor.GenerateKey()
	if err != nil {
		return nil, err
	}

	material := &messages.KeyMaterial{
		ID:              uuid.New().String(),
		Key:             key.String(),
		DateTimeCreated: time.Now(),
	}
	s.logger.Info("Generated key ", material.ID)
	return material, nil
}

// EncryptMessage enciphers an eight-byte message, generating a key when none is given.
func (s *messageCipherService) EncryptMessage(ctx context.Context, message, key string) (*messages.EncryptedMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(message) != messages.MessageSize {
		return nil, fmt.Errorf("%w: got %d", messages.ErrInvalidMessageLength, len(message))
	}

	var keyBits bitstring.Vector
	var err error
	if strings.TrimSpace(key) == "" {
		if keyBits, err = s.ideaProcessor.GenerateKey(); err != nil {
			return nil, err
		}
	} else if keyBits, err = bitstring.Parse(key); err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	plain := bitstring.FromText(message)
	cipherBits, err := s.ideaProcessor.Encrypt(plain, keyBits)
	if err != nil {
		return nil, err
	}

	changed, err := bitstring.HammingDistance(plain, cipherBits)
	if err != nil {
		return nil, fmt.Errorf("failed to compare plaintext and ciphertext: %w", err)
	}

	encrypted := &messages.EncryptedMessage{
		ID:              uuid.New().String(),
		Ciphertext:      cipherBits.String(),
		Key:             keyBits.String(),
		ChangedBits:     changed,
		DateTimeCreated: time.Now(),
	}
	s.logger.Info(fmt.Sprintf("Encrypted message %s, %d bits changed", encrypted.ID, changed))
	return encrypted, nil
}

// DecryptMessage recovers an eight-byte message from its ciphertext bits.
func (s *messageCipherService) DecryptMessage(ctx context.Context, ciphertext, key string) (*messages.DecryptedMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cipherBits, err := bitstring.Parse(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext: %w", err)
	}
	keyBits, err := bitstring.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}

	plain, err := s.ideaProcessor.Decrypt(cipherBits, keyBits)
	if err != nil {
		return nil, err
	}

	text, err := plain.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}

	s.logger.Info("Decrypted message")
	return &messages.DecryptedMessage{
		Message: text,
		Bits:    plain.String(),
	}, nil
}
