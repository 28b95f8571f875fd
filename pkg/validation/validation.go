package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "alumninet/pkg/errors"
)

var (
	// EmailRegex validates email format
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// UsernameRegex validates username format
	UsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Validator accumulates field errors across an entire payload. Checks never
// short-circuit: a client gets every problem back in one response.
type Validator struct {
	fields []apperrors.FieldError
}

func New() *Validator {
	return &Validator{}
}

// Add records a field error.
func (v *Validator) Add(field, issue string) {
	v.fields = append(v.fields, apperrors.FieldError{Field: field, Issue: issue})
}

// Addf records a formatted field error.
func (v *Validator) Addf(field, format string, args ...interface{}) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// Valid reports whether no errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.fields) == 0
}

// Fields returns the accumulated field errors.
func (v *Validator) Fields() []apperrors.FieldError {
	return v.fields
}

// Err returns nil when valid, otherwise a 400 AppError carrying all
// accumulated field errors.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return apperrors.NewValidationError(v.fields)
}

// Require checks that a string is non-empty after trimming.
func (v *Validator) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Addf(field, "%s is required", field)
	}
}

// Length checks rune length bounds. Use with an already-required field, or
// only when the optional field is present.
func (v *Validator) Length(field, value string, min, max int) {
	length := utf8.RuneCountInString(value)
	if length < min {
		v.Addf(field, "%s must be at least %d characters", field, min)
	}
	if length > max {
		v.Addf(field, "%s is too long (max %d characters)", field, max)
	}
}

// Username checks username format and length.
func (v *Validator) Username(field, value string) {
	v.Length(field, value, 3, 255)
	if value != "" && !UsernameRegex.MatchString(value) {
		v.Addf(field, "%s contains invalid characters (only letters, numbers, _, - allowed)", field)
	}
}

// Email checks email format.
func (v *Validator) Email(field, value string) {
	if value == "" {
		v.Addf(field, "%s is required", field)
		return
	}
	if len(value) > 254 {
		v.Addf(field, "%s is too long (max 254 characters)", field)
		return
	}
	if !EmailRegex.MatchString(value) {
		v.Add(field, "invalid email format")
	}
}

// URL checks URL format, http(s) schemes only.
func (v *Validator) URL(field, value string) {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.Addf(field, "%s must be a valid http(s) URL", field)
	}
}

// URLs checks every entry of a URL list.
func (v *Validator) URLs(field string, values []string) {
	for i, value := range values {
		v.URL(fmt.Sprintf("%s[%d]", field, i), value)
	}
}

// Positive checks that a number is strictly greater than zero.
func (v *Validator) Positive(field string, value float64) {
	if value <= 0 {
		v.Addf(field, "%s must be positive", field)
	}
}

// Year checks a plausible graduation year.
func (v *Validator) Year(field string, value int) {
	if value < 1900 || value > 2200 {
		v.Addf(field, "%s must be a valid year", field)
	}
}
