package models

import (
	"fmt"
	"telemedicina-service/internal/pkg/constvars"
)

// Role is the closed set of portal roles. Values outside the set never
// leave ParseRole.
type Role string

const (
	RolePatient Role = constvars.RolePatient
	RoleDoctor  Role = constvars.RoleDoctor
	RoleAdmin   Role = constvars.RoleAdmin
)

var ErrUnknownRole = fmt.Errorf("role must be one of [%s, %s, %s]", RolePatient, RoleDoctor, RoleAdmin)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// LandingPage is the page a client navigates to after signing in.
func (r Role) LandingPage() string {
	switch r {
	case RolePatient:
		return constvars.PagePatientIndex
	case RoleDoctor:
		return constvars.PageDoctorIndex
	case RoleAdmin:
		return constvars.PageAdminIndex
	}
	return constvars.PageLogin
}

// RegistrationFields lists the optional profile fields collected for the role
// on top of email, password and full name.
func (r Role) RegistrationFields() []string {
	switch r {
	case RolePatient:
		return []string{"phone", "birthDate"}
	case RoleDoctor:
		return []string{"phone", "specialty", "licenseNumber", "cv"}
	case RoleAdmin:
		return []string{"phone"}
	}
	return nil
}
