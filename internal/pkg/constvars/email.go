package constvars

const (
	EmailResetPasswordSubject = "[TELEMEDICINA] Password recovery"
	EmailResetPasswordBody    = "Hello %s,\n\nWe received a request to recover the password of your account. Use the link below to choose a new password:\n\n%s\n\nThe link is valid until %s and can only be used once. If you did not request this, you can ignore this email."
	EmailSendBasicFormat      = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)
