package models

type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SignInResult struct {
	Identity *Identity
	Session  *Session
}

// ResetPasswordTicket is what a reset token resolves to while it is alive.
type ResetPasswordTicket struct {
	IdentityID string `json:"identity_id"`
	Email      string `json:"email"`
}
