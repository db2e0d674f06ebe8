package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipvault/clipvault/models"
)

func TestProbe_NoContainerIsDeterministic(t *testing.T) {
	// No server at all: the probe must fail instantly without a network call.
	adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: "http://127.0.0.1:1", ContainerID: ""})

	start := time.Now()
	err := adapter.Probe(context.Background())
	require.ErrorIs(t, err, ErrNoContainer)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestProbe_AvailableAndRejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK, wantErr: nil},
		{name: "no content", status: http.StatusNoContent, wantErr: nil},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/containers/iCloud.com.clipvault/availability", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: srv.URL, ContainerID: "iCloud.com.clipvault"})
			err := adapter.Probe(context.Background())
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAccountStatus_MapsBackendValues(t *testing.T) {
	tests := []struct {
		body string
		want models.AccountStatus
	}{
		{body: "available", want: models.AccountStatusAvailable},
		{body: "no_account", want: models.AccountStatusNoAccount},
		{body: "restricted", want: models.AccountStatusRestricted},
		{body: "temporarily_unavailable", want: models.AccountStatusTemporarilyUnavailable},
		{body: "something-new", want: models.AccountStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(accountStatusResponse{Status: tt.body})
			}))
			defer srv.Close()

			adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: srv.URL, ContainerID: "c"})
			got, err := adapter.AccountStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountStatus_QueryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: srv.URL, ContainerID: "c"})
	got, err := adapter.AccountStatus(context.Background())
	require.ErrorIs(t, err, ErrAccountQuery)
	assert.Equal(t, models.AccountStatusUnknown, got)
}

func TestPush_SendsEntriesWithBearerToken(t *testing.T) {
	var gotAuth string
	var gotEntries []models.ClipEntry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEntries))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	adapter := NewHTTPAdapter(HTTPClientConfig{
		BaseURL:     srv.URL,
		ContainerID: "c",
		DeviceToken: "opaque-device-token",
	})

	entries := []models.ClipEntry{{ID: "a", Payload: []byte("blob"), Version: 1}}
	require.NoError(t, adapter.Push(context.Background(), entries))

	assert.Equal(t, "Bearer opaque-device-token", gotAuth)
	require.Len(t, gotEntries, 1)
	assert.Equal(t, "a", gotEntries[0].ID)
}

func TestPush_EmptyBatchSkipsNetwork(t *testing.T) {
	adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: "http://127.0.0.1:1", ContainerID: "c"})
	require.NoError(t, adapter.Push(context.Background(), nil))
}

func TestFetch_ReturnsEntriesSince(t *testing.T) {
	since := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, since.Format(time.RFC3339Nano), r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.ClipEntry{{ID: "remote-1"}})
	}))
	defer srv.Close()

	adapter := NewHTTPAdapter(HTTPClientConfig{BaseURL: srv.URL, ContainerID: "c"})
	entries, err := adapter.Fetch(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "remote-1", entries[0].ID)
}

func TestCheckToken_RejectsExpiredJWTWithoutNetwork(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "device-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	token, err := expired.SignedString([]byte("test-key"))
	require.NoError(t, err)

	adapter := NewHTTPAdapter(HTTPClientConfig{
		BaseURL:     "http://127.0.0.1:1", // unreachable: proves no round trip happens
		ContainerID: "c",
		DeviceToken: token,
	})

	pushErr := adapter.Push(context.Background(), []models.ClipEntry{{ID: "x"}})
	require.ErrorIs(t, pushErr, ErrUnauthorized)

	_, fetchErr := adapter.Fetch(context.Background(), time.Now())
	require.ErrorIs(t, fetchErr, ErrUnauthorized)
}
