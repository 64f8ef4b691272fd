package validation

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone numbers follow the national numbering plan: either a local 11-digit
	// number starting with 0, or an international number with an optional +
	// prefix, a country-code digit and 12 further digits.
	PhonePattern = `(^0\d{10}$)|(^\+?[234]\d{12}$)`

	// Usernames contain only letters and digits
	UsernamePattern = `^[a-zA-Z0-9]+$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone    *regexp.Regexp
	Username *regexp.Regexp
}{
	Phone:    regexp.MustCompile(PhonePattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// IsValidPhoneNumber reports whether the value matches the accepted
// numbering-plan formats.
func IsValidPhoneNumber(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// IsAlphanumericUsername reports whether the username contains only
// alphanumeric characters.
func IsAlphanumericUsername(value string) bool {
	return CompiledPatterns.Username.MatchString(value)
}

// IsValidCourseUnit reports whether the unit is positive and representable
// with a single fractional digit.
func IsValidCourseUnit(unit float64) bool {
	if unit <= 0 {
		return false
	}
	scaled := unit * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// phoneTag is the custom binding tag registered on gin's validator engine
const phoneTag = "phone"

// RegisterCustomValidators registers domain validation tags on the provided
// validator instance (gin's binding engine).
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		if str, ok := fl.Field().Interface().(string); ok {
			return IsValidPhoneNumber(str)
		}
		return false
	})
}
