package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"telemedicina-service/internal/app/models"
	"telemedicina-service/internal/pkg/dto/responses"
	"time"

	"github.com/goccy/go-json"
)

const SessionSchemaVersion = 1

// SessionRecord is what survives between client runs. A record written with
// another schema version loads as absent.
type SessionRecord struct {
	Version int                       `json:"version"`
	User    *responses.AuthorizedUser `json:"user"`
	Session *models.Session           `json:"session"`
	SavedAt time.Time                 `json:"savedAt"`
}

// SessionStore returns nil, nil from Load when nothing usable is stored.
type SessionStore interface {
	Load() (*SessionRecord, error)
	Save(record *SessionRecord) error
	Clear() error
}

type FileSessionStore struct {
	Path string
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{Path: path}
}

// DefaultSessionPath places the session file under the user config dir.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "telemedicina", "session.json"), nil
}

func (s *FileSessionStore) Load() (*SessionRecord, error) {
	content, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record SessionRecord
	err = json.Unmarshal(content, &record)
	if err != nil {
		return nil, nil
	}
	if record.Version != SessionSchemaVersion || record.User == nil {
		return nil, nil
	}
	return &record, nil
}

// Save stamps the current schema version on records that carry none.
func (s *FileSessionStore) Save(record *SessionRecord) error {
	stored := *record
	if stored.Version == 0 {
		stored.Version = SessionSchemaVersion
	}
	content, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(s.Path), 0o700)
	if err != nil {
		return err
	}

	tmp := s.Path + ".tmp"
	err = os.WriteFile(tmp, content, 0o600)
	if err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

type MemorySessionStore struct {
	mu     sync.Mutex
	record *SessionRecord
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (*SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil || s.record.Version != SessionSchemaVersion {
		return nil, nil
	}
	record := *s.record
	return &record, nil
}

func (s *MemorySessionStore) Save(record *SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *record
	if stored.Version == 0 {
		stored.Version = SessionSchemaVersion
	}
	s.record = &stored
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	return nil
}
