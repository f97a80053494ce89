package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// Credentials is the minimal identity the client persists between runs:
// the bearer token and the signed-in staff record. No expiry check is
// done locally; an expired token is only discovered via a 401.
type Credentials struct {
	Token string              `json:"token"`
	User  usecase.StaffRecord `json:"user"`
}

// CredentialStore persists credentials across client runs.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	Clear() error
}

// FileCredentialStore keeps credentials as JSON in a single file.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore creates a store backed by the given file path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Load() (*Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read credentials file")
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, errors.Wrap(err, "failed to decode credentials file")
	}

	return &creds, nil
}

func (s *FileCredentialStore) Save(creds *Credentials) error {
	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode credentials")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create credentials directory")
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "failed to write credentials file")
	}

	return nil
}

func (s *FileCredentialStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove credentials file")
	}

	return nil
}

// Session owns the signed-in state: persisted credentials, the one-shot
// sign-in notice, and the handler fired when the server rejects the token.
type Session struct {
	mu    sync.Mutex
	store CredentialStore
	creds *Credentials

	// notice is the one-shot welcome/goodbye message, consumed once.
	notice string

	// onUnauthorized runs once per 401 event, after credentials are cleared.
	onUnauthorized func()
}

// NewSession creates a session, restoring any persisted credentials.
func NewSession(store CredentialStore) (*Session, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Session{
		store: store,
		creds: creds,
	}, nil
}

// SetUnauthorizedHandler registers the collaborator invoked when the
// server rejects the token.
func (s *Session) SetUnauthorizedHandler(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUnauthorized = fn
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}

	return s.creds.Token
}

// User returns the signed-in staff record, or nil when signed out.
func (s *Session) User() *usecase.StaffRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil
	}

	user := s.creds.User

	return &user
}

// SignIn stores the credentials and arms the one-shot welcome notice.
func (s *Session) SignIn(token string, user usecase.StaffRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = &Credentials{Token: token, User: user}
	s.notice = "Selamat datang, " + user.Name

	return s.store.Save(s.creds)
}

// SignOut clears the credentials and arms the one-shot goodbye notice.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	s.notice = "Anda telah keluar"

	return s.store.Clear()
}

// Clear drops the credentials without arming a notice. Used on 401.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil

	return s.store.Clear()
}

// ConsumeNotice returns the pending one-shot notice and clears it, so a
// second call returns "".
func (s *Session) ConsumeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	notice := s.notice
	s.notice = ""

	return notice
}

// HandleUnauthorized clears the credentials and invokes the registered
// handler. Load and mutation paths route every 401 through here.
func (s *Session) HandleUnauthorized() {
	s.mu.Lock()
	s.creds = nil
	_ = s.store.Clear()
	handler := s.onUnauthorized
	s.mu.Unlock()

	if handler != nil {
		handler()
	}
}
