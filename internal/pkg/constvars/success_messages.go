package constvars

const (
	ResponseUnknown = "unknown"

	RegisterSuccessMessage        = "user registered successfully"
	LoginSuccessMessage           = "successfully login"
	LogoutSuccessMessage          = "successfully logout"
	RecoverSuccessMessage         = "recovery email sent"
	ResetPasswordSuccessMessage   = "password already reset successfully"
	SessionVerifiedSuccessMessage = "session is valid"
)
