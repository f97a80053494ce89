package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpus/internal/usecase"
)

func TestSession_NoticeConsumedOnce(t *testing.T) {
	session := newTestSession(t)

	require.NoError(t, session.SignIn("token-123", usecase.StaffRecord{ID: 1, Name: "Sari"}))

	assert.Equal(t, "Selamat datang, Sari", session.ConsumeNotice())
	assert.Empty(t, session.ConsumeNotice(), "notice is one-shot")
}

func TestSession_SignOutArmsGoodbyeNotice(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SignIn("token-123", usecase.StaffRecord{ID: 1, Name: "Sari"}))
	_ = session.ConsumeNotice()

	require.NoError(t, session.SignOut())

	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
	assert.Equal(t, "Anda telah keluar", session.ConsumeNotice())
}

func TestSession_PersistsAcrossRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileCredentialStore(path)

	session, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, session.SignIn("token-123", usecase.StaffRecord{ID: 1, Name: "Sari", Email: "sari@perpus.id"}))

	// A fresh session over the same file restores the credentials.
	restored, err := NewSession(store)
	require.NoError(t, err)
	assert.Equal(t, "token-123", restored.Token())
	require.NotNil(t, restored.User())
	assert.Equal(t, "sari@perpus.id", restored.User().Email)
}

func TestSession_HandleUnauthorizedClearsAndNotifies(t *testing.T) {
	session := newTestSession(t)
	require.NoError(t, session.SignIn("token-123", usecase.StaffRecord{ID: 1}))

	calls := 0
	session.SetUnauthorizedHandler(func() { calls++ })

	session.HandleUnauthorized()

	assert.Empty(t, session.Token(), "credentials cleared on 401")
	assert.Equal(t, 1, calls)
	assert.Empty(t, session.ConsumeNotice(), "401 does not arm a notice")
}

func TestFileCredentialStore_ClearIsIdempotent(t *testing.T) {
	store := NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))

	require.NoError(t, store.Clear())

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, creds)
}
