package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/config"
)

func TestNewSupabase(t *testing.T) {
	_, err := NewSupabase(config.UsersConfig{})
	assert.Error(t, err)

	client, err := NewSupabase(config.UsersConfig{BaseURL: "http://x", TimeoutSec: 5})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestSupabaseClient_Create(t *testing.T) {
	var gotPath, gotKey string
	var gotReq signupRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u-1","email":"a@b.c","created_at":"2024-05-01T10:00:00Z","confirmed_at":"2024-05-01T10:00:01Z"}`))
	}))
	defer srv.Close()

	client, err := NewSupabase(config.UsersConfig{BaseURL: srv.URL, APIKey: "anon", TimeoutSec: 5})
	require.NoError(t, err)

	user, err := client.Create(context.Background(), "a@b.c", "pw12345")
	require.NoError(t, err)

	assert.Equal(t, "/auth/v1/signup", gotPath)
	assert.Equal(t, "anon", gotKey)
	assert.Equal(t, "a@b.c", gotReq.Email)
	assert.Equal(t, "pw12345", gotReq.Password)

	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "a@b.c", user.Email)
	assert.False(t, user.ConfirmedAt.IsZero())
}

func TestSupabaseClient_CreateUnconfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"u-2","email":"a@b.c","created_at":"2024-05-01T10:00:00Z","confirmed_at":null}`))
	}))
	defer srv.Close()

	client, err := NewSupabase(config.UsersConfig{BaseURL: srv.URL, TimeoutSec: 5})
	require.NoError(t, err)

	user, err := client.Create(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.True(t, user.ConfirmedAt.IsZero())
}

func TestSupabaseClient_CreateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"email already registered"}`))
	}))
	defer srv.Close()

	client, err := NewSupabase(config.UsersConfig{BaseURL: srv.URL, TimeoutSec: 5})
	require.NoError(t, err)

	_, err = client.Create(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
}
