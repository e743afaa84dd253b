package queries

const (
	InsertProfile = `
		INSERT INTO profiles (id, email, full_name, role, phone, birth_date, specialty, license_number, cv)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
	`

	GetProfileByID = `
		SELECT id, email, full_name, role, phone, birth_date, specialty, license_number, cv
		FROM profiles
		WHERE id = $1
	`

	GetProfileByEmail = `
		SELECT id, email, full_name, role, phone, birth_date, specialty, license_number, cv
		FROM profiles
		WHERE email = $1
		LIMIT 1
	`
)
