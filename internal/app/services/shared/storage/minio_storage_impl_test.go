package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"telemedicina-service/internal/pkg/dto/requests"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMinioClient(t *testing.T, handler http.HandlerFunc) *minio.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := minio.New(strings.TrimPrefix(server.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio123", ""),
		Secure: false,
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return client
}

func TestMinioStorage_UploadFile(t *testing.T) {
	var (
		mu          sync.Mutex
		gotMethod   string
		gotPath     string
		contentType string
	)
	client := newTestMinioClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		mu.Lock()
		gotMethod, gotPath, contentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		mu.Unlock()
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	})
	storage := NewMinioStorage(client, "telemedicina", zap.NewNop())

	key, err := storage.UploadFile(context.Background(), &requests.UploadFile{
		ObjectName:  "cv/user-1_20240101.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})

	require.NoError(t, err)
	assert.Equal(t, "cv/user-1_20240101.pdf", key)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/telemedicina/cv/user-1_20240101.pdf", gotPath)
	assert.Equal(t, "application/pdf", contentType)
}

func TestMinioStorage_UploadFile_Error(t *testing.T) {
	client := newTestMinioClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied.</Message></Error>`))
	})
	storage := NewMinioStorage(client, "telemedicina", zap.NewNop())

	_, err := storage.UploadFile(context.Background(), &requests.UploadFile{
		ObjectName: "cv/user-1.pdf",
		Data:       []byte("%PDF-1.4"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "telemedicina")
}
