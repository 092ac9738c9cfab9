package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MichaelAJay/go-provider-registration/errors"
)

// MaxUserNameLength is the longest user name, in characters, accepted from an authentication window.
const MaxUserNameLength = 255

// ValidateUserName validates the user name typed into an authentication window.
func ValidateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewRequiredFieldError("user_name")
	}

	if utf8.RuneCountInString(name) > MaxUserNameLength {
		return errors.NewValidationError("user_name",
			fmt.Sprintf("must be no more than %d characters long", MaxUserNameLength))
	}

	if containsControlCharacters(name) {
		return errors.NewValidationError("user_name", "contains invalid characters")
	}

	return nil
}

// SanitizeString removes null bytes and control characters and trims surrounding whitespace.
func SanitizeString(input string) string {
	var result strings.Builder
	for _, char := range input {
		if unicode.IsPrint(char) {
			result.WriteRune(char)
		}
	}
	return strings.TrimSpace(result.String())
}

func containsControlCharacters(s string) bool {
	for _, char := range s {
		if char == 0 || unicode.IsControl(char) {
			return true
		}
	}
	return false
}
