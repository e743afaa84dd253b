package utils

import (
	"strings"
	"telemedicina-service/internal/pkg/dto/requests"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Passwords and roles are never touched. Whitespace is part of the secret and
// a role must match exactly.

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = normalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.CV = strings.TrimSpace(input.CV)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeRecoverPasswordRequest(input *requests.RecoverPassword) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Token = strings.TrimSpace(input.Token)
}
