// Package validators holds custom go-playground validator tags.
package validators

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ujwal-s-r/system-design/internal/pkg/bitstring"
)

// BitsTag is the tag name of BitStringValidation.
const BitsTag = "bits"

// BitStringValidation accepts a string that parses as a bit vector. With a
// parameter, as in `validate:"bits=128"`, the vector must also be exactly
// that many bits wide. Whitespace between digits is ignored.
func BitStringValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	v, err := bitstring.Parse(field.String())
	if err != nil || v.Len() == 0 {
		return false
	}

	param := fl.Param()
	if param == "" {
		return true
	}
	width, err := strconv.Atoi(param)
	if err != nil {
		return false
	}
	return v.Len() == width
}

// Register adds every custom tag of this package to validate.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(BitsTag, BitStringValidation); err != nil {
		return fmt.Errorf("failed to register %q validation: %w", BitsTag, err)
	}
	return nil
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails on an empty tag or nil func
	_ = Register(validate)
	return validate
}
