package validation

import (
	"testing"

	"github.com/deepblocks/auth-service/internal/errors"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestValidateSuccess(t *testing.T) {
	if err := Validate(credentials{Email: "a@x.com", Password: "secret123"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name  string
		input credentials
		field string
	}{
		{"missing email", credentials{Password: "secret123"}, "email"},
		{"bad email", credentials{Email: "not-an-email", Password: "secret123"}, "email"},
		{"missing password", credentials{Email: "a@x.com"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}

			fields, ok := appErr.Details["fields"].([]FieldError)
			if !ok || len(fields) == 0 {
				t.Fatalf("expected field details, got %v", appErr.Details)
			}
			if fields[0].Field != tt.field {
				t.Errorf("expected failing field %s, got %s", tt.field, fields[0].Field)
			}
		})
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	err := Validate(credentials{})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	fields := appErr.Details["fields"].([]FieldError)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fields))
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Email":          "email",
		"AccessToken":    "access_token",
		"HashedPassword": "hashed_password",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%s) = %s, want %s", in, got, want)
		}
	}
}
