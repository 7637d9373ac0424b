// Package validate holds the per-field-type format checks. The submission
// pipeline runs the exact same functions the form engine runs for inline
// errors, so client and server can never disagree.
package validate

import (
	"errors"
	"regexp"
)

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reURL   = regexp.MustCompile(`^(https?://)?[\w.-]+\.\w{2,}(/.*)?$`)
	reColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	reDigit = regexp.MustCompile(`\D`)
)

var (
	ErrEmail = errors.New("Formato de email inválido")
	ErrPhone = errors.New("Teléfono inválido (10 a 12 dígitos)")
	ErrURL   = errors.New("URL inválida")
	ErrColor = errors.New("Código hex inválido (ej: #6366f1)")
)

func IsEmail(s string) bool {
	if s == "" || len(s) > 254 {
		return false
	}
	return reEmail.MatchString(s)
}

func IsURL(s string) bool {
	return reURL.MatchString(s)
}

func IsColor(s string) bool {
	return reColor.MatchString(s)
}

func IsPhone(s string) bool {
	digits := reDigit.ReplaceAllString(s, "")
	return len(digits) >= 10 && len(digits) <= 12
}

// Field checks value against the format rules for fieldType. An empty value
// is always valid: required-ness is the form engine's concern, not a format
// concern. Unknown field types are a no-op.
func Field(fieldType, value string) error {
	if value == "" {
		return nil
	}
	switch fieldType {
	case "email":
		if !IsEmail(value) {
			return ErrEmail
		}
	case "tel":
		if !IsPhone(value) {
			return ErrPhone
		}
	case "url":
		if !IsURL(value) {
			return ErrURL
		}
	case "color":
		if !IsColor(value) {
			return ErrColor
		}
	}
	return nil
}
