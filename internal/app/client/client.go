// Package client talks to the gateway on behalf of a user and keeps the
// signed in user and session in a SessionStore.
package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Store      SessionStore
	Log        *logrus.Logger
}

func NewClient(baseURL string, httpClient *http.Client, store SessionStore, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
		Store:      store,
		Log:        logger,
	}
}

// RedirectError tells the caller where to navigate after an auth failure.
type RedirectError struct {
	Target string
	Err    error
}

func (e *RedirectError) Error() string {
	return e.Err.Error()
}

func (e *RedirectError) Unwrap() error {
	return e.Err
}

type LoginResult struct {
	Message     string
	User        *responses.AuthorizedUser
	Session     *models.Session
	LandingPage string
}

type RegisterResult struct {
	Message  string
	User     *responses.AuthorizedUser
	NextView string
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user,omitempty"`
	Session *models.Session `json:"session,omitempty"`
}

func (c *Client) LoginUser(ctx context.Context, email, password string, role models.Role) (*LoginResult, error) {
	response, err := c.send(ctx, constvars.MethodPost, "/api/login", "", &requests.LoginUser{
		Email:    email,
		Password: password,
		Role:     role.String(),
	})
	if err != nil {
		return nil, err
	}

	user := new(responses.AuthorizedUser)
	err = json.Unmarshal(response.User, user)
	if err != nil {
		return nil, err
	}

	err = c.Store.Save(&SessionRecord{
		User:    user,
		Session: response.Session,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	c.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Debug("session saved")
	return &LoginResult{
		Message:     response.Message,
		User:        user,
		Session:     response.Session,
		LandingPage: user.Role.LandingPage(),
	}, nil
}

// RegisterUser sends only the fields collected for the form's role.
func (c *Client) RegisterUser(ctx context.Context, form *requests.RegisterUser) (*RegisterResult, error) {
	response, err := c.send(ctx, constvars.MethodPost, "/api/register", "", registrationPayload(form))
	if err != nil {
		return nil, err
	}

	user := new(responses.AuthorizedUser)
	if len(response.User) > 0 {
		err = json.Unmarshal(response.User, user)
		if err != nil {
			return nil, err
		}
	}

	return &RegisterResult{
		Message:  response.Message,
		User:     user,
		NextView: constvars.ViewLoginSection,
	}, nil
}

// CheckAuth returns the stored record without contacting the server.
func (c *Client) CheckAuth() (*SessionRecord, error) {
	record, err := c.Store.Load()
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &RedirectError{Target: constvars.PageLogin, Err: ErrNotAuthenticated}
	}
	return record, nil
}

// VerifySession asks the server to confirm the stored session. A rejected
// session is cleared locally.
func (c *Client) VerifySession(ctx context.Context) (*responses.Me, error) {
	record, err := c.CheckAuth()
	if err != nil {
		return nil, err
	}

	response, err := c.send(ctx, constvars.MethodGet, "/api/me", accessTokenOf(record), nil)
	if err != nil {
		var serverErr *ServerError
		if errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusUnauthorized {
			if clearErr := c.Store.Clear(); clearErr != nil {
				c.Log.WithError(clearErr).Warn("failed to clear rejected session")
			}
			return nil, &RedirectError{Target: constvars.PageLogin, Err: ErrNotAuthenticated}
		}
		return nil, err
	}

	me := new(responses.Me)
	err = json.Unmarshal(response.User, me)
	if err != nil {
		return nil, err
	}
	return me, nil
}

// Logout revokes the stored session on a best effort basis and always clears
// it locally. It returns the page to navigate to.
func (c *Client) Logout(ctx context.Context) (string, error) {
	record, err := c.Store.Load()
	if err != nil {
		c.Log.WithError(err).Warn("failed to load session before logout")
	}

	if token := accessTokenOf(record); token != "" {
		_, err = c.send(ctx, constvars.MethodPost, "/api/logout", token, nil)
		if err != nil {
			c.Log.WithError(err).Warn("server side logout failed")
		}
	}

	return constvars.PageLogin, c.Store.Clear()
}

func (c *Client) RecoverPassword(ctx context.Context, email string) (string, error) {
	response, err := c.send(ctx, constvars.MethodPost, "/api/recover", "", &requests.RecoverPassword{Email: email})
	if err != nil {
		return "", err
	}
	return response.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	response, err := c.send(ctx, constvars.MethodPost, "/api/reset-password", "", &requests.ResetPassword{
		Token:       token,
		NewPassword: newPassword,
	})
	if err != nil {
		return "", err
	}
	return response.Message, nil
}

func (c *Client) send(ctx context.Context, method, path, bearer string, body interface{}) (*envelope, error) {
	var payload io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.Log.WithError(err).WithField("path", path).Debug("request failed")
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	response := new(envelope)
	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if !response.Success {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: response.Message}
	}
	return response, nil
}

func accessTokenOf(record *SessionRecord) string {
	if record == nil || record.Session == nil {
		return ""
	}
	return record.Session.AccessToken
}

func registrationPayload(form *requests.RegisterUser) *requests.RegisterUser {
	payload := &requests.RegisterUser{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
		Role:     form.Role,
	}

	role, err := models.ParseRole(form.Role)
	if err != nil {
		return payload
	}

	switch role {
	case models.RolePatient:
		payload.Phone = form.Phone
		payload.BirthDate = form.BirthDate
	case models.RoleDoctor:
		payload.Phone = form.Phone
		payload.Specialty = form.Specialty
		payload.LicenseNumber = form.LicenseNumber
		payload.CV = form.CV
	case models.RoleAdmin:
		payload.Phone = form.Phone
	}
	return payload
}
