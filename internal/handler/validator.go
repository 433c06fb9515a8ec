package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/go-playground/validator/v10"
)

// Custom validation rule names
const (
	identityRule = "identity"
	amountRule   = "amount"

	identityTag = "required,max=128," + identityRule
)

var (
	identityPattern = regexp.MustCompile(`^[A-Za-z0-9:_.@\-]+$`)
	amountPattern   = regexp.MustCompile(`^-?[0-9]+$`)
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation(identityRule, validateIdentity)
		_ = v.RegisterValidation(amountRule, validateAmount)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = validationMessage(e.Tag())
		}
	}

	return errs
}

func validationMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case identityRule:
		return "Must contain only letters, digits and : _ . @ -"
	case amountRule:
		return "Must be a whole number"
	}
	return "Invalid value"
}

// validateIdentity accepts opaque identities without whitespace or control characters
func validateIdentity(fl validator.FieldLevel) bool {
	identity := fl.Field().String()
	if identity == "" {
		return true
	}
	return identityPattern.MatchString(identity)
}

// validateAmount accepts signed decimal integers that fit in 256 bits
func validateAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().String()
	if amount == "" {
		return true
	}
	if !amountPattern.MatchString(amount) {
		return false
	}
	_, ok := sdkmath.NewIntFromString(amount)
	return ok
}

// parseAmount converts a validated amount string; empty means zero
func parseAmount(amount string) (sdkmath.Int, bool) {
	if amount == "" {
		return sdkmath.ZeroInt(), true
	}
	return sdkmath.NewIntFromString(amount)
}
