package identities

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/dto/responses"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type identitySupabaseClient struct {
	BaseUrl        string
	AnonKey        string
	ServiceRoleKey string
	HTTPClient     *http.Client
	Log            *zap.Logger
}

// NewIdentitySupabaseClient talks to the GoTrue endpoints of the backend.
// Public endpoints use the anon key, admin endpoints the service role key.
func NewIdentitySupabaseClient(baseUrl, anonKey, serviceRoleKey string, httpClient *http.Client, logger *zap.Logger) contracts.IdentityBackend {
	return &identitySupabaseClient{
		BaseUrl:        strings.TrimRight(baseUrl, "/"),
		AnonKey:        anonKey,
		ServiceRoleKey: serviceRoleKey,
		HTTPClient:     httpClient,
		Log:            logger,
	}
}

func (c *identitySupabaseClient) SignUp(ctx context.Context, email, password string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identitySupabaseClient.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	resp, err := c.send(ctx, constvars.MethodPost, constvars.SupabaseAuthSignUpPath, c.AnonKey, "", &requests.SupabaseCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		c.Log.Error("identitySupabaseClient.SignUp error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("identitySupabaseClient.SignUp backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackend(backendErr)
	}

	var result responses.SupabaseSignUp
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("identitySupabaseClient.SignUp error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err)
	}

	identity := &models.Identity{ID: result.ID, Email: result.Email}
	if result.User != nil {
		identity = &models.Identity{ID: result.User.ID, Email: result.User.Email}
	}
	if identity.ID == "" {
		c.Log.Warn("identitySupabaseClient.SignUp backend returned no user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	c.Log.Info("identitySupabaseClient.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.ID),
	)
	return identity, nil
}

func (c *identitySupabaseClient) SignInWithPassword(ctx context.Context, email, password string) (*models.SignInResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identitySupabaseClient.SignInWithPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	resp, err := c.send(ctx, constvars.MethodPost, constvars.SupabaseAuthTokenPasswordPath, c.AnonKey, "", &requests.SupabaseCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		c.Log.Error("identitySupabaseClient.SignInWithPassword error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("identitySupabaseClient.SignInWithPassword backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackend(backendErr)
	}

	var session responses.SupabaseSession
	err = json.NewDecoder(resp.Body).Decode(&session)
	if err != nil {
		c.Log.Error("identitySupabaseClient.SignInWithPassword error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err)
	}
	if session.User == nil || session.User.ID == "" || session.AccessToken == "" {
		return nil, exceptions.ErrBackend(errors.New(constvars.ErrDevBackendNoUserReturned))
	}

	c.Log.Info("identitySupabaseClient.SignInWithPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.User.ID),
	)
	return &models.SignInResult{
		Identity: &models.Identity{ID: session.User.ID, Email: session.User.Email},
		Session: &models.Session{
			AccessToken:  session.AccessToken,
			TokenType:    session.TokenType,
			ExpiresIn:    session.ExpiresIn,
			ExpiresAt:    session.ExpiresAt,
			RefreshToken: session.RefreshToken,
		},
	}, nil
}

func (c *identitySupabaseClient) SignOut(ctx context.Context, accessToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identitySupabaseClient.SignOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.send(ctx, constvars.MethodPost, constvars.SupabaseAuthLogoutPath, c.AnonKey, accessToken, nil)
	if err != nil {
		c.Log.Error("identitySupabaseClient.SignOut error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("identitySupabaseClient.SignOut backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return exceptions.ErrBackend(backendErr)
	}

	c.Log.Info("identitySupabaseClient.SignOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *identitySupabaseClient) DeleteIdentity(ctx context.Context, identityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identitySupabaseClient.DeleteIdentity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)

	resp, err := c.send(ctx, constvars.MethodDelete, adminUserPath(identityID), c.ServiceRoleKey, "", nil)
	if err != nil {
		c.Log.Error("identitySupabaseClient.DeleteIdentity error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("identitySupabaseClient.DeleteIdentity backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return exceptions.ErrBackend(backendErr)
	}

	c.Log.Info("identitySupabaseClient.DeleteIdentity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)
	return nil
}

func (c *identitySupabaseClient) UpdatePassword(ctx context.Context, identityID, newPassword string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("identitySupabaseClient.UpdatePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)

	resp, err := c.send(ctx, constvars.MethodPut, adminUserPath(identityID), c.ServiceRoleKey, "", &requests.SupabaseUpdateUser{
		Password: newPassword,
	})
	if err != nil {
		c.Log.Error("identitySupabaseClient.UpdatePassword error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("identitySupabaseClient.UpdatePassword backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return exceptions.ErrBackend(backendErr)
	}

	c.Log.Info("identitySupabaseClient.UpdatePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)
	return nil
}

// send builds and executes one backend call. Errors are already CustomErrors.
func (c *identitySupabaseClient) send(ctx context.Context, method, path, apiKey, bearer string, body interface{}) (*http.Response, error) {
	var payload *bytes.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(requestJSON)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, payload)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	utils.SetSupabaseHeaders(req, apiKey, bearer)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func adminUserPath(identityID string) string {
	return fmt.Sprintf("%s/%s", constvars.SupabaseAuthAdminUsersPath, url.PathEscape(identityID))
}
