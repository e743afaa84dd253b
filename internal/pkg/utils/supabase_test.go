package utils

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func responseWith(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestReadSupabaseError(t *testing.T) {
	tests := []struct {
		name string
		resp *http.Response
		want string
	}{
		{"gotrue msg", responseWith(422, `{"code":422,"msg":"User already registered"}`), "User already registered"},
		{"oauth error description", responseWith(400, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`), "Invalid login credentials"},
		{"postgrest message", responseWith(409, `{"code":"23505","message":"duplicate key value violates unique constraint \"profiles_pkey\""}`), `duplicate key value violates unique constraint "profiles_pkey"`},
		{"plain text", responseWith(502, "bad gateway from proxy"), "bad gateway from proxy"},
		{"empty body", responseWith(503, ""), "service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, ReadSupabaseError(tt.resp), tt.want)
		})
	}
}

func TestSetSupabaseHeaders(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://backend/rest/v1/profiles", nil)
	SetSupabaseHeaders(req, "anon-key", "")
	assert.Equal(t, "anon-key", req.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", req.Header.Get("Authorization"))

	SetSupabaseHeaders(req, "anon-key", "user-token")
	assert.Equal(t, "Bearer user-token", req.Header.Get("Authorization"))
}
