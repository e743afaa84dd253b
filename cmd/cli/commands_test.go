package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"telemedicina-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	mu     sync.Mutex
	bodies map[string]map[string]interface{}
}

func newFakeGateway(t *testing.T) (*httptest.Server, *fakeGateway) {
	t.Helper()
	gateway := &fakeGateway{bodies: map[string]map[string]interface{}{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		content, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(content, &body)
		gateway.mu.Lock()
		gateway.bodies[r.URL.Path] = body
		gateway.mu.Unlock()

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		switch r.URL.Path {
		case "/api/login":
			io.WriteString(w, `{"success":true,"message":"successfully login","user":{"id":"doc-1","email":"doc@example.com","fullName":"Dr. Lima","role":"doctor"},"session":{"access_token":"access-1"}}`)
		case "/api/register":
			io.WriteString(w, `{"success":true,"message":"user registered successfully","user":{"id":"doc-1","email":"doc@example.com","role":"doctor"}}`)
		case "/api/logout":
			io.WriteString(w, `{"success":true,"message":"successfully logout"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"success":false,"message":"not found"}`)
		}
	}))
	t.Cleanup(server.Close)
	return server, gateway
}

func (g *fakeGateway) body(path string) map[string]interface{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bodies[path]
}

func runCLI(t *testing.T, serverURL, sessionFile, stdin string, args ...string) (string, error) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	stdout := &bytes.Buffer{}
	state := &cliState{log: log, stdin: strings.NewReader(stdin), stdout: stdout}

	argv := append([]string{"telemedicina", "--server", serverURL, "--session-file", sessionFile}, args...)
	err := newApp(state).RunContext(context.Background(), argv)
	return stdout.String(), err
}

func TestCLI_LoginWhoamiLogout(t *testing.T) {
	server, _ := newFakeGateway(t)
	sessionFile := filepath.Join(t.TempDir(), "session.json")

	out, err := runCLI(t, server.URL, sessionFile, "secret1\n", "login", "--email", "doc@example.com", "--role", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "doctorIndex.html")

	out, err = runCLI(t, server.URL, sessionFile, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Dr. Lima <doc@example.com> as doctor")

	out, err = runCLI(t, server.URL, sessionFile, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "login.html")

	_, err = os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))

	_, err = runCLI(t, server.URL, sessionFile, "", "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login.html")
}

func TestCLI_RegisterDoctorWithCV(t *testing.T) {
	server, gateway := newFakeGateway(t)
	dir := t.TempDir()
	cvPath := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(cvPath, []byte("hello"), 0o600))

	out, err := runCLI(t, server.URL, filepath.Join(dir, "session.json"), "secret1\n",
		"register", "--email", "doc@example.com", "--role", "doctor", "--full-name", "Dr. Lima",
		"--specialty", "cardiology", "--birth-date", "1980-01-01", "--cv", cvPath)

	require.NoError(t, err)
	assert.Contains(t, out, "login-section")

	body := gateway.body("/api/register")
	assert.Equal(t, "cardiology", body["specialty"])
	assert.Equal(t, "data:application/pdf;base64,aGVsbG8=", body["cv"])
	assert.NotContains(t, body, "birthDate")
}

func TestCLI_LoginRejectsUnknownRole(t *testing.T) {
	for _, role := range []string{"nurse", "PATIENT"} {
		t.Run(role, func(t *testing.T) {
			server, gateway := newFakeGateway(t)

			_, err := runCLI(t, server.URL, filepath.Join(t.TempDir(), "session.json"), "secret1\n",
				"login", "--email", "ana@example.com", "--role", role)

			require.Error(t, err)
			assert.Nil(t, gateway.body("/api/login"))
		})
	}
}

func TestCLI_MissingPassword(t *testing.T) {
	server, _ := newFakeGateway(t)

	_, err := runCLI(t, server.URL, filepath.Join(t.TempDir(), "session.json"), "",
		"login", "--email", "ana@example.com", "--role", "patient")

	assert.EqualError(t, err, "missing password from stdin")
}
