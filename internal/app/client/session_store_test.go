package client

import (
	"os"
	"path/filepath"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *SessionRecord {
	return &SessionRecord{
		User:    &responses.AuthorizedUser{ID: "user-1", Email: "ana@example.com", FullName: "Ana", Role: models.RolePatient},
		Session: &models.Session{AccessToken: "access-1", TokenType: "bearer", ExpiresIn: 3600},
		SavedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionStores(t *testing.T) {
	stores := map[string]func(t *testing.T) SessionStore{
		"file": func(t *testing.T) SessionStore {
			return NewFileSessionStore(filepath.Join(t.TempDir(), "nested", "session.json"))
		},
		"memory": func(t *testing.T) SessionStore {
			return NewMemorySessionStore()
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)

			record, err := store.Load()
			require.NoError(t, err)
			assert.Nil(t, record)

			require.NoError(t, store.Save(sampleRecord()))

			record, err = store.Load()
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, SessionSchemaVersion, record.Version)
			assert.Equal(t, "user-1", record.User.ID)
			assert.Equal(t, models.RolePatient, record.User.Role)
			assert.Equal(t, "access-1", record.Session.AccessToken)
			assert.True(t, record.SavedAt.Equal(sampleRecord().SavedAt))

			require.NoError(t, store.Clear())
			record, err = store.Load()
			require.NoError(t, err)
			assert.Nil(t, record)

			// clearing twice is fine
			require.NoError(t, store.Clear())
		})

		t.Run(name+" version mismatch loads as absent", func(t *testing.T) {
			store := newStore(t)
			record := sampleRecord()
			record.Version = SessionSchemaVersion + 1
			require.NoError(t, store.Save(record))

			loaded, err := store.Load()
			require.NoError(t, err)
			assert.Nil(t, loaded)
		})
	}
}

func TestFileSessionStore_CorruptFileLoadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	record, err := NewFileSessionStore(path).Load()

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFileSessionStore_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileSessionStore(path).Save(sampleRecord()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
