package requests

type SupabaseCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SupabaseUpdateUser struct {
	Password string `json:"password"`
}
