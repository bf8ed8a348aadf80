package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/models"
)

type httpProvider struct {
	client *resty.Client
	logger *logger.Logger
}

type accessResponse struct {
	Level string `json:"level"`
}

type assetResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

// NewHTTPProvider constructs an [AssetProvider] talking to a remote photo
// service over HTTP/REST. It normalises and validates the base URL and
// configures the underlying client with the given request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPProvider(address string, timeout time.Duration, log *logger.Logger) (AssetProvider, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid provider address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpProvider{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestAccess implements [AssetProvider]. It GETs /api/access and maps the
// reported level onto the tri-state permission model.
func (h *httpProvider) RequestAccess(ctx context.Context) (models.AccessLevel, error) {
	var body accessResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/access")
	if err != nil {
		return models.AccessNotDetermined, fmt.Errorf("access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessNotDetermined, err
	}

	return parseAccessLevel(body.Level), nil
}

func parseAccessLevel(level string) models.AccessLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "authorized":
		return models.AccessAuthorized
	case "limited":
		return models.AccessLimited
	case "denied":
		return models.AccessDenied
	case "restricted":
		return models.AccessRestricted
	default:
		return models.AccessNotDetermined
	}
}

// FetchAll implements [AssetProvider]. It GETs /api/assets and returns the
// full listing; any non-2xx status is a total enumeration failure.
func (h *httpProvider) FetchAll(ctx context.Context) ([]models.Asset, error) {
	var body []assetResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/assets")
	if err != nil {
		return nil, fmt.Errorf("fetch assets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	assets := make([]models.Asset, 0, len(body))
	for _, a := range body {
		assets = append(assets, models.Asset{
			Ref:       models.AssetRef{ID: a.ID},
			CreatedAt: a.CreatedAt,
		})
	}

	return assets, nil
}

// ResolveImage implements [AssetProvider]. It GETs the asset's image scaled
// server-side to the requested bounds.
func (h *httpProvider) ResolveImage(ctx context.Context, ref models.AssetRef, size models.ImageSize) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"w": strconv.Itoa(size.Width),
			"h": strconv.Itoa(size.Height),
		}).
		Get("/api/assets/" + url.PathEscape(ref.ID) + "/image")
	if err != nil {
		return nil, fmt.Errorf("resolve image request for %s: %w", ref.ID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Delete implements [AssetProvider]. It POSTs the whole batch in one request;
// the service applies it atomically or rejects it.
func (h *httpProvider) Delete(ctx context.Context, refs []models.AssetRef) error {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(deleteRequest{IDs: ids}).
		Post("/api/assets/delete")
	if err != nil {
		return fmt.Errorf("delete assets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int("count", len(ids)).Msg("provider delete accepted")
	return nil
}
