package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	FullName string `validate:"required"`
	Role     string `validate:"required,oneof=patient doctor admin"`
	Password string `validate:"min=6"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request sampleRequest
		want    string
	}{
		{
			name:    "missing email",
			request: sampleRequest{FullName: "Ana", Role: "patient", Password: "secret1"},
			want:    "email is required",
		},
		{
			name:    "malformed email",
			request: sampleRequest{Email: "ana", FullName: "Ana", Role: "patient", Password: "secret1"},
			want:    "email must be a valid email",
		},
		{
			name:    "camel case field",
			request: sampleRequest{Email: "ana@mail.com", Role: "patient", Password: "secret1"},
			want:    "full_name is required",
		},
		{
			name:    "unknown role",
			request: sampleRequest{Email: "ana@mail.com", FullName: "Ana", Role: "nurse", Password: "secret1"},
			want:    "role must be one of [patient, doctor, admin]",
		},
		{
			name:    "short password",
			request: sampleRequest{Email: "ana@mail.com", FullName: "Ana", Role: "admin", Password: "abc"},
			want:    "password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			assert.Equal(t, tt.want, FormatFirstValidationError(err))
		})
	}
}

func TestFormatFirstValidationError_NonValidationError(t *testing.T) {
	assert.Equal(t, "invalid input", FormatFirstValidationError(errors.New("boom")))
	assert.Equal(t, "failed to process your request", FormatFirstValidationError(nil))
}
