package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ujwal-s-r/system-design/internal/domain/messages"
	"github.com/ujwal-s-r/system-design/internal/pkg/validators"
)

// ErrorResponse is the body of every 4xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// EncryptRequest asks for one eight-byte message to be encrypted. Leave Key
// empty to have the server generate one.
type EncryptRequest struct {
	Message string `json:"message" validate:"required"`
	Key     string `json:"key" validate:"omitempty,bits=128"`
}

// DecryptRequest carries a ciphertext block and its key as bit strings.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,bits=64"`
	Key        string `json:"key" validate:"required,bits=128"`
}

// KeyResponse represents a generated key.
type KeyResponse struct {
	ID              string    `json:"id"`
	Key             string    `json:"key"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptResponse represents an encrypted message.
type EncryptResponse struct {
	ID              string    `json:"id"`
	Ciphertext      string    `json:"ciphertext"`
	Key             string    `json:"key"`
	ChangedBits     int       `json:"changed_bits"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// DecryptResponse represents a recovered message.
type DecryptResponse struct {
	Message string `json:"message"`
	Bits    string `json:"bits"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	if len(r.Message) != messages.MessageSize {
		return fmt.Errorf("%w: got %d", messages.ErrInvalidMessageLength, len(r.Message))
	}
	return nil
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateRequest(r)
}

func validateRequest(r interface{}) error {
	err := validators.New().Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var details []string
		for _, fieldErr := range validationErrors {
			details = append(details, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", details)
	}
	return fmt.Errorf("validation error: %w", err)
}
