package responses

type SupabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SupabaseSignUp covers both shapes of the signup answer: a bare user when
// email confirmation is pending, or a session wrapping the user otherwise.
type SupabaseSignUp struct {
	ID          string        `json:"id"`
	Email       string        `json:"email"`
	AccessToken string        `json:"access_token"`
	User        *SupabaseUser `json:"user"`
}

type SupabaseSession struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *SupabaseUser `json:"user"`
}

type SupabaseError struct {
	Code             interface{} `json:"code,omitempty"`
	Error            string      `json:"error,omitempty"`
	ErrorDescription string      `json:"error_description,omitempty"`
	Msg              string      `json:"msg,omitempty"`
	Message          string      `json:"message,omitempty"`
}

// Text returns the most specific human message the backend sent.
func (e SupabaseError) Text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Message != "":
		return e.Message
	}
	return e.Error
}
