package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpus/internal/usecase"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()

	store := NewFileCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	session, err := NewSession(store)
	require.NoError(t, err)

	return session
}

// respond writes the server's success envelope around data.
func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"code":    status,
		"data":    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"code":    status,
		"message": message,
		"error":   map[string]string{"code": code, "details": ""},
	})
}

func TestResourceStore_LoadReplacesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []usecase.MemberRecord{
			{ID: 1, NoKTP: "111", Nama: "Ani"},
			{ID: 2, NoKTP: "222", Nama: "Budi"},
		})
	}))
	defer server.Close()

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)
	store := NewResourceStore(api.ListMembers, nil)

	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.IsLoaded())
	assert.Len(t, store.Items(), 2)
	assert.Empty(t, store.ErrorMessage())
}

func TestResourceStore_Unauthorized_HandlerOnceNoBanner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)

	calls := 0
	store := NewResourceStore(api.ListMembers, func() { calls++ })

	err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, 1, calls, "unauthorized handler must run exactly once")
	assert.Empty(t, store.ErrorMessage(), "401 must not record an error banner")
	assert.False(t, store.IsLoaded())
}

func TestResourceStore_FailureRecordsMessageAndStillLoads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Terjadi kesalahan pada server")
	}))
	defer server.Close()

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)
	store := NewResourceStore(api.ListMembers, nil)

	err := store.Load(context.Background())
	require.Error(t, err)

	assert.True(t, store.IsLoaded(), "failed load still latches loaded")
	assert.Equal(t, "Terjadi kesalahan pada server", store.ErrorMessage())
}

func TestResourceStore_IsLoadedIsOneWayLatch(t *testing.T) {
	fail := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")

			return
		}
		respond(w, http.StatusOK, []usecase.MemberRecord{{ID: 1, NoKTP: "111"}})
	}))
	defer server.Close()

	session := newTestSession(t)
	api := NewAPIClient(server.URL, session)
	store := NewResourceStore(api.ListMembers, nil)

	_ = store.Load(context.Background())
	assert.True(t, store.IsLoaded())

	fail = false
	require.NoError(t, store.Load(context.Background()))
	assert.True(t, store.IsLoaded())
	assert.Empty(t, store.ErrorMessage(), "success clears the persisted error")
}

func TestResourceStore_AlertAutoExpires(t *testing.T) {
	store := NewResourceStore(func(ctx context.Context) ([]usecase.MemberRecord, error) {
		return nil, nil
	}, nil)

	now := time.Now()
	store.now = func() time.Time { return now }

	store.SetAlert("Member berhasil ditambahkan")
	assert.Equal(t, "Member berhasil ditambahkan", store.Alert())

	now = now.Add(successAlertTTL + time.Millisecond)
	assert.Empty(t, store.Alert(), "success alerts auto-dismiss")
}

func TestResourceStore_ErrorPersistsUntilNextSuccess(t *testing.T) {
	store := NewResourceStore(func(ctx context.Context) ([]usecase.MemberRecord, error) {
		return nil, nil
	}, nil)

	store.SetError("Terjadi kesalahan. Silakan coba lagi.")
	assert.Equal(t, "Terjadi kesalahan. Silakan coba lagi.", store.ErrorMessage())

	store.SetAlert("Berhasil")
	assert.Empty(t, store.ErrorMessage())
}
