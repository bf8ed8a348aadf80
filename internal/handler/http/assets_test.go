package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/mock"
	"github.com/snapsift/snapsift/internal/provider"
	"github.com/snapsift/snapsift/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *mock.MockAssetProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)

	assetProvider := mock.NewMockAssetProvider(ctrl)
	handler := NewHandler(assetProvider, logger.Nop())

	ts := httptest.NewServer(handler.Init())
	t.Cleanup(ts.Close)

	return ts, assetProvider
}

func TestAccessEndpoint(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().RequestAccess(gomock.Any()).Return(models.AccessAuthorized, nil)

	resp, err := http.Get(ts.URL + "/api/access")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Level string `json:"level"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "authorized", body.Level)
}

func TestAccessEndpointFailure(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().RequestAccess(gomock.Any()).
		Return(models.AccessNotDetermined, fmt.Errorf("probe root: %w", provider.ErrUnavailable))

	resp, err := http.Get(ts.URL + "/api/access")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestListAssetsEndpoint(t *testing.T) {
	ts, assetProvider := newTestServer(t)

	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	assetProvider.EXPECT().FetchAll(gomock.Any()).Return([]models.Asset{
		{Ref: models.AssetRef{ID: "2026/march.jpg"}, CreatedAt: created},
		{Ref: models.AssetRef{ID: "2026/april.jpg"}, CreatedAt: created.AddDate(0, 1, 0)},
	}, nil)

	resp, err := http.Get(ts.URL + "/api/assets")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"created_at"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "2026/march.jpg", body[0].ID)
	assert.True(t, body[0].CreatedAt.Equal(created))
}

func TestListAssetsEndpointFailure(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("walk failed"))

	resp, err := http.Get(ts.URL + "/api/assets")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAssetImageEndpoint(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().
		ResolveImage(gomock.Any(), models.AssetRef{ID: "pic.jpg"}, models.ImageSize{Width: 320, Height: 240}).
		Return([]byte("jpeg-bytes"), nil)

	resp, err := http.Get(ts.URL + "/api/assets/pic.jpg/image?w=320&h=240")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), body)
}

func TestAssetImageEndpointNotFound(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().ResolveImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("open image: %w", provider.ErrNotFound))

	resp, err := http.Get(ts.URL + "/api/assets/missing.jpg/image")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAssetsEndpoint(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().
		Delete(gomock.Any(), []models.AssetRef{{ID: "a.jpg"}, {ID: "b.jpg"}}).
		Return(nil)

	payload := bytes.NewBufferString(`{"ids":["a.jpg","b.jpg"]}`)
	resp, err := http.Post(ts.URL+"/api/assets/delete", "application/json", payload)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteAssetsEndpointInvalidJSON(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/assets/delete", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAssetsEndpointEmptyBatch(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/assets/delete", "application/json", bytes.NewBufferString(`{"ids":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAssetsEndpointProviderFailure(t *testing.T) {
	ts, assetProvider := newTestServer(t)
	assetProvider.EXPECT().Delete(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("missing handle: %w", provider.ErrBadRequest))

	payload := bytes.NewBufferString(`{"ids":["gone.jpg"]}`)
	resp, err := http.Post(ts.URL+"/api/assets/delete", "application/json", payload)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
