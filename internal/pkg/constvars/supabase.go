package constvars

const (
	SupabaseAuthSignUpPath        = "/auth/v1/signup"
	SupabaseAuthTokenPasswordPath = "/auth/v1/token?grant_type=password"
	SupabaseAuthLogoutPath        = "/auth/v1/logout"
	SupabaseAuthAdminUsersPath    = "/auth/v1/admin/users"
	SupabaseRestProfilesPath      = "/rest/v1/profiles"
)

const (
	PostgrestProfileColumns  = "id,email,full_name,role,phone,birth_date,specialty,license_number,cv"
	PostgrestRecoveryColumns = "id,email,full_name"
)
