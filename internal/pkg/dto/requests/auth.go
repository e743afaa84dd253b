package requests

type RegisterUser struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	FullName      string `json:"fullName" validate:"required"`
	Role          string `json:"role" validate:"required,role"`
	Phone         string `json:"phone,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	Specialty     string `json:"specialty,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	CV            string `json:"cv,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

type RecoverPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
