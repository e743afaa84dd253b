package client

import "errors"

const ConnectivityMessage = "could not connect to the server, please check your connection"

var (
	ErrUnavailable      = errors.New(ConnectivityMessage)
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ServerError carries the message of a failed envelope verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}
