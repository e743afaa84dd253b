package models

// Profile is the portal record attached to an identity. It is written once at
// registration and never updated.
type Profile struct {
	ID            string `json:"id" bson:"_id"`
	Email         string `json:"email" bson:"email"`
	FullName      string `json:"full_name" bson:"full_name"`
	Role          Role   `json:"role" bson:"role"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty"`
	BirthDate     string `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	Specialty     string `json:"specialty,omitempty" bson:"specialty,omitempty"`
	LicenseNumber string `json:"license_number,omitempty" bson:"license_number,omitempty"`
	CV            string `json:"cv,omitempty" bson:"cv,omitempty"`
}
