package responses

import "telemedicina-service/internal/app/models"

type RegisterUser struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type AuthorizedUser struct {
	ID       string      `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

type LoginUser struct {
	User    *AuthorizedUser `json:"user"`
	Session *models.Session `json:"session"`
}

type Me struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	FullName      string      `json:"fullName"`
	Role          models.Role `json:"role"`
	Phone         string      `json:"phone,omitempty"`
	BirthDate     string      `json:"birthDate,omitempty"`
	Specialty     string      `json:"specialty,omitempty"`
	LicenseNumber string      `json:"licenseNumber,omitempty"`
	CV            string      `json:"cv,omitempty"`
}
