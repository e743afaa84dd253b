package profiles

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profilePostgrestClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewProfilePostgrestClient reads and writes the profiles table through the
// backend REST interface.
func NewProfilePostgrestClient(baseUrl, apiKey string, httpClient *http.Client, logger *zap.Logger) contracts.ProfileRepository {
	return &profilePostgrestClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/") + constvars.SupabaseRestProfilesPath,
		APIKey:     apiKey,
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (c *profilePostgrestClient) Insert(ctx context.Context, profile *models.Profile) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profilePostgrestClient.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)

	requestJSON, err := json.Marshal(profile)
	if err != nil {
		c.Log.Error("profilePostgrestClient.Insert error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewReader(requestJSON))
	if err != nil {
		c.Log.Error("profilePostgrestClient.Insert error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	utils.SetSupabaseHeaders(req, c.APIKey, "")
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderPrefer, constvars.PreferReturnMinimal)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("profilePostgrestClient.Insert error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("profilePostgrestClient.Insert backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return exceptions.ErrBackend(backendErr)
	}

	c.Log.Info("profilePostgrestClient.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.ID),
	)
	return nil
}

func (c *profilePostgrestClient) FindByID(ctx context.Context, identityID string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profilePostgrestClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identityID),
	)
	return c.findOne(ctx, "id", identityID, constvars.PostgrestProfileColumns)
}

func (c *profilePostgrestClient) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profilePostgrestClient.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return c.findOne(ctx, "email", email, constvars.PostgrestRecoveryColumns)
}

func (c *profilePostgrestClient) findOne(ctx context.Context, column, value, columns string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query := url.Values{}
	query.Set(column, "eq."+value)
	query.Set("select", columns)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"?"+query.Encode(), nil)
	if err != nil {
		c.Log.Error("profilePostgrestClient.findOne error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	utils.SetSupabaseHeaders(req, c.APIKey, "")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("profilePostgrestClient.findOne error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if !utils.IsSuccessStatus(resp.StatusCode) {
		backendErr := utils.ReadSupabaseError(resp)
		c.Log.Error("profilePostgrestClient.findOne backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackend(backendErr)
	}

	var rows []models.Profile
	err = json.NewDecoder(resp.Body).Decode(&rows)
	if err != nil {
		c.Log.Error("profilePostgrestClient.findOne error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendDecodeResponse(err)
	}

	if len(rows) == 0 {
		c.Log.Info("profilePostgrestClient.findOne no profile found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	c.Log.Info("profilePostgrestClient.findOne succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, rows[0].ID),
	)
	return &rows[0], nil
}
