package validation

import (
	"testing"

	apperrors "alumninet/pkg/errors"
)

func TestValidator_AccumulatesAllErrors(t *testing.T) {
	v := New()
	v.Require("username", "")
	v.Email("email", "not-an-email")
	v.Length("password", "short", 8, 255)

	if v.Valid() {
		t.Fatal("expected validator to be invalid")
	}
	if got := len(v.Fields()); got != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d: %v", got, v.Fields())
	}
}

func TestValidator_Err(t *testing.T) {
	v := New()
	if v.Err() != nil {
		t.Error("expected nil error for empty validator")
	}

	v.Require("content", "")
	err := v.Err()
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.HTTPStatus != 400 {
		t.Errorf("HTTPStatus = %d, want 400", appErr.HTTPStatus)
	}
	if len(appErr.Fields) != 1 || appErr.Fields[0].Field != "content" {
		t.Errorf("unexpected field errors: %v", appErr.Fields)
	}
}

func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid", "alumni@example.com", true},
		{"valid with plus", "a.b+c@example.co.uk", true},
		{"missing at", "example.com", false},
		{"missing domain", "user@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Email("email", tt.email)
			if v.Valid() != tt.valid {
				t.Errorf("Email(%q) valid = %v, want %v", tt.email, v.Valid(), tt.valid)
			}
		})
	}
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"https", "https://example.com/file.png", true},
		{"http", "http://example.com", true},
		{"no scheme", "example.com/file.png", false},
		{"ftp", "ftp://example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.URL("link", tt.url)
			if v.Valid() != tt.valid {
				t.Errorf("URL(%q) valid = %v, want %v", tt.url, v.Valid(), tt.valid)
			}
		})
	}
}

func TestValidator_URLs_ReportsIndex(t *testing.T) {
	v := New()
	v.URLs("mediaUrls", []string{"https://ok.example.com", "bad"})

	if v.Valid() {
		t.Fatal("expected invalid")
	}
	if got := v.Fields()[0].Field; got != "mediaUrls[1]" {
		t.Errorf("field = %q, want mediaUrls[1]", got)
	}
}

func TestValidator_Username(t *testing.T) {
	v := New()
	v.Username("username", "ok_user-1")
	if !v.Valid() {
		t.Errorf("expected valid username, got %v", v.Fields())
	}

	v = New()
	v.Username("username", "ab")
	if v.Valid() {
		t.Error("expected too-short username to fail")
	}

	v = New()
	v.Username("username", "has spaces")
	if v.Valid() {
		t.Error("expected username with spaces to fail")
	}
}

func TestValidator_Positive(t *testing.T) {
	v := New()
	v.Positive("amount", 10.5)
	if !v.Valid() {
		t.Error("expected positive amount to pass")
	}

	v = New()
	v.Positive("amount", 0)
	if v.Valid() {
		t.Error("expected zero amount to fail")
	}

	v = New()
	v.Positive("amount", -3)
	if v.Valid() {
		t.Error("expected negative amount to fail")
	}
}
