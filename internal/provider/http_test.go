package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/models"
)

func newTestHTTPProvider(t *testing.T, handler http.Handler) AssetProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewHTTPProvider(srv.URL, 2*time.Second, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestNewHTTPProvider_EmptyAddress(t *testing.T) {
	_, err := NewHTTPProvider("", time.Second, logger.Nop())
	require.Error(t, err)
}

func TestHTTPProvider_RequestAccess_MapsLevel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/access", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"level": "limited"})
	})
	p := newTestHTTPProvider(t, mux)

	level, err := p.RequestAccess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AccessLimited, level)
}

func TestHTTPProvider_FetchAll_ReturnsListing(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "asset-1", "created_at": created.Format(time.RFC3339)},
			{"id": "asset-2", "created_at": created.Add(time.Hour).Format(time.RFC3339)},
		})
	})
	p := newTestHTTPProvider(t, mux)

	assets, err := p.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "asset-1", assets[0].Ref.ID)
	assert.True(t, assets[0].CreatedAt.Equal(created))
}

func TestHTTPProvider_FetchAll_ServerErrorIsTotalFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	p := newTestHTTPProvider(t, mux)

	assets, err := p.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, assets)
}

func TestHTTPProvider_ResolveImage_PassesTargetSize(t *testing.T) {
	var gotW, gotH string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets/asset-1/image", func(w http.ResponseWriter, r *http.Request) {
		gotW = r.URL.Query().Get("w")
		gotH = r.URL.Query().Get("h")
		_, _ = w.Write([]byte("jpeg-bytes"))
	})
	p := newTestHTTPProvider(t, mux)

	data, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "asset-1"}, models.ImageSize{Width: 640, Height: 480})
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, "640", gotW)
	assert.Equal(t, "480", gotH)
}

func TestHTTPProvider_ResolveImage_NotFound(t *testing.T) {
	p := newTestHTTPProvider(t, http.NotFoundHandler())

	_, err := p.ResolveImage(context.Background(), models.AssetRef{ID: "gone"}, models.ImageSize{Width: 100, Height: 100})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPProvider_Delete_SendsWholeBatch(t *testing.T) {
	var got deleteRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets/delete", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})
	p := newTestHTTPProvider(t, mux)

	err := p.Delete(context.Background(), []models.AssetRef{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.IDs)
}

func TestHTTPProvider_Delete_UnauthorizedMapped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assets/delete", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no token", http.StatusUnauthorized)
	})
	p := newTestHTTPProvider(t, mux)

	err := p.Delete(context.Background(), []models.AssetRef{{ID: "a"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
