package profiles

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"telemedicina-service/internal/app/models"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Prefer string
	APIKey string
	Body   []byte
}

type capture struct {
	mu      sync.Mutex
	request capturedRequest
}

func (c *capture) get() capturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.request
}

func newPostgrestServer(t *testing.T, status int, response string) (*httptest.Server, *capture) {
	t.Helper()
	captured := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		query := map[string]string{}
		for key, values := range r.URL.Query() {
			query[key] = values[0]
		}
		captured.mu.Lock()
		captured.request = capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  query,
			Prefer: r.Header.Get("Prefer"),
			APIKey: r.Header.Get("apikey"),
			Body:   body,
		}
		captured.mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestProfilePostgrestClient_Insert(t *testing.T) {
	server, captured := newPostgrestServer(t, http.StatusCreated, "")
	repo := NewProfilePostgrestClient(server.URL, "service-key", server.Client(), zap.NewNop())

	err := repo.Insert(context.Background(), &models.Profile{
		ID:        "user-1",
		Email:     "ana@example.com",
		FullName:  "Ana",
		Role:      models.RolePatient,
		BirthDate: "1990-05-01",
	})

	require.NoError(t, err)
	request := captured.get()
	assert.Equal(t, http.MethodPost, request.Method)
	assert.Equal(t, "/rest/v1/profiles", request.Path)
	assert.Equal(t, "return=minimal", request.Prefer)
	assert.Equal(t, "service-key", request.APIKey)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(request.Body, &body))
	assert.Equal(t, "Ana", body["full_name"])
	assert.Equal(t, "1990-05-01", body["birth_date"])
	assert.Equal(t, "patient", body["role"])
	assert.NotContains(t, body, "specialty")
}

func TestProfilePostgrestClient_Insert_Rejected(t *testing.T) {
	server, _ := newPostgrestServer(t, http.StatusConflict, `{"code":"23505","message":"duplicate key value violates unique constraint \"profiles_pkey\""}`)
	repo := NewProfilePostgrestClient(server.URL, "service-key", server.Client(), zap.NewNop())

	err := repo.Insert(context.Background(), &models.Profile{ID: "user-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profiles_pkey")
}

func TestProfilePostgrestClient_FindByID(t *testing.T) {
	server, captured := newPostgrestServer(t, http.StatusOK, `[{"id":"user-1","email":"ana@example.com","full_name":"Ana","role":"patient"}]`)
	repo := NewProfilePostgrestClient(server.URL, "service-key", server.Client(), zap.NewNop())

	profile, err := repo.FindByID(context.Background(), "user-1")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ana", profile.FullName)
	assert.Equal(t, models.RolePatient, profile.Role)

	request := captured.get()
	assert.Equal(t, "eq.user-1", request.Query["id"])
	assert.Equal(t, "id,email,full_name,role,phone,birth_date,specialty,license_number,cv", request.Query["select"])
}

func TestProfilePostgrestClient_FindByEmail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		server, captured := newPostgrestServer(t, http.StatusOK, `[{"id":"user-1","email":"ana@example.com","full_name":"Ana"}]`)
		repo := NewProfilePostgrestClient(server.URL, "service-key", server.Client(), zap.NewNop())

		profile, err := repo.FindByEmail(context.Background(), "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "eq.ana@example.com", captured.get().Query["email"])
		assert.Equal(t, "id,email,full_name", captured.get().Query["select"])
	})

	t.Run("Not Found", func(t *testing.T) {
		server, _ := newPostgrestServer(t, http.StatusOK, `[]`)
		repo := NewProfilePostgrestClient(server.URL, "service-key", server.Client(), zap.NewNop())

		profile, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		require.NoError(t, err)
		assert.Nil(t, profile)
	})
}
