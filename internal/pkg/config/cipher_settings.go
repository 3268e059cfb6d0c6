package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ujwal-s-r/system-design/internal/infrastructure/cryptography/idea"
)

// Multiplication convention names accepted in configuration.
const (
	MulConventionTextbook = "textbook"
	MulConventionLiteral  = "literal"
)

// DefaultCipherCacheSize is the number of key schedules kept by default.
const DefaultCipherCacheSize = 128

// CipherSettings configures the IDEA processor.
type CipherSettings struct {
	// MulConvention is "textbook" (0 reads as 2^16) or "literal" (0 is zero).
	MulConvention string `mapstructure:"mul_convention" validate:"required,oneof=textbook literal"`
	// CacheSize bounds the schedule cache; 0 disables it.
	CacheSize int `mapstructure:"cache_size" validate:"gte=0,lte=65536"`
}

// DefaultCipherSettings returns the textbook convention with a small cache.
func DefaultCipherSettings() CipherSettings {
	return CipherSettings{
		MulConvention: idea.DefaultMulConvention.String(),
		CacheSize:     DefaultCipherCacheSize,
	}
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}
	return nil
}

// Convention returns the parsed multiplication convention.
func (s *CipherSettings) Convention() (idea.MulConvention, error) {
	return idea.ParseMulConvention(s.MulConvention)
}
