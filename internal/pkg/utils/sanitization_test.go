package utils

import (
	"telemedicina-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Normalized Role Untouched", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "  ANA@Example.COM ",
			Role:     " Doctor ",
			FullName: "  Ana Perez ",
			Password: " secret ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "ana@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, " Doctor ", request.Role, "role must reach validation as sent")
		assert.Equal(t, "Ana Perez", request.FullName)
		assert.Equal(t, " secret ", request.Password, "password must stay untouched")
	})

	t.Run("Optional Fields Trimmed", func(t *testing.T) {
		request := &requests.RegisterUser{
			Phone:         " 555-1234 ",
			Specialty:     " cardiology ",
			LicenseNumber: " LIC-1 ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "555-1234", request.Phone)
		assert.Equal(t, "cardiology", request.Specialty)
		assert.Equal(t, "LIC-1", request.LicenseNumber)
	})
}

func TestSanitizeLoginUserRequest(t *testing.T) {
	request := &requests.LoginUser{Email: " Bob@Mail.com", Password: "pw ", Role: "ADMIN"}

	SanitizeLoginUserRequest(request)

	assert.Equal(t, "bob@mail.com", request.Email)
	assert.Equal(t, "ADMIN", request.Role)
	assert.Equal(t, "pw ", request.Password)
}

func TestSanitizeRecoverAndResetRequests(t *testing.T) {
	recoverRequest := &requests.RecoverPassword{Email: " X@Y.io "}
	SanitizeRecoverPasswordRequest(recoverRequest)
	assert.Equal(t, "x@y.io", recoverRequest.Email)

	resetRequest := &requests.ResetPassword{Token: " abc ", NewPassword: " new "}
	SanitizeResetPasswordRequest(resetRequest)
	assert.Equal(t, "abc", resetRequest.Token)
	assert.Equal(t, " new ", resetRequest.NewPassword)
}
