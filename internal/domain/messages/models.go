package messages

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ujwal-s-r/system-design/internal/pkg/validators"
)

// MessageSize is the number of bytes in a message, one IDEA block.
const MessageSize = 8

// ErrInvalidMessageLength is returned for messages that are not exactly
// MessageSize bytes long.
var ErrInvalidMessageLength = fmt.Errorf("message must be exactly %d bytes", MessageSize)

// KeyMaterial is a generated IDEA key.
type KeyMaterial struct {
	ID              string    `validate:"required,uuid4"`
	Key             string    `validate:"required,bits=128"`
	DateTimeCreated time.Time `validate:"required"`
}

// EncryptedMessage is the result of encrypting one message.
type EncryptedMessage struct {
	ID              string    `validate:"required,uuid4"`
	Ciphertext      string    `validate:"required,bits=64"`
	Key             string    `validate:"required,bits=128"`
	ChangedBits     int       `validate:"gte=0,lte=64"`
	DateTimeCreated time.Time `validate:"required"`
}

// DecryptedMessage is the result of decrypting one ciphertext block. Message
// holds the raw bytes of the block, which need not be valid UTF-8 when the
// wrong key was used.
type DecryptedMessage struct {
	Message string
	Bits    string `validate:"required,bits=64"`
}

// Validate for validating KeyMaterial struct
func (k *KeyMaterial) Validate() error {
	return validateStruct(k)
}

// Validate for validating EncryptedMessage struct
func (m *EncryptedMessage) Validate() error {
	return validateStruct(m)
}

// Validate for validating DecryptedMessage struct
func (m *DecryptedMessage) Validate() error {
	return validateStruct(m)
}

func validateStruct(s interface{}) error {
	err := validators.New().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
