package responses

// ResponseDTO is the envelope of every API answer. A failed request never
// carries user or session.
type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    interface{} `json:"user,omitempty"`
	Session interface{} `json:"session,omitempty"`
}
