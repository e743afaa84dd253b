package utils

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
)

func NewBackendHTTPClient(timeoutInSeconds int) *http.Client {
	return &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second}
}

// SetSupabaseHeaders authenticates a request against the backend. The bearer
// defaults to the api key itself unless a user access token is given.
func SetSupabaseHeaders(req *http.Request, apiKey, bearer string) {
	if bearer == "" {
		bearer = apiKey
	}
	req.Header.Set(constvars.HeaderAPIKey, apiKey)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearer)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
}

func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// ReadSupabaseError turns a failed backend response into an error carrying
// the backend's own message.
func ReadSupabaseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return errors.New(strings.ToLower(http.StatusText(resp.StatusCode)))
	}

	var backendError responses.SupabaseError
	err = json.Unmarshal(body, &backendError)
	if err != nil || backendError.Text() == "" {
		return errors.New(strings.TrimSpace(string(body)))
	}
	return errors.New(backendError.Text())
}
