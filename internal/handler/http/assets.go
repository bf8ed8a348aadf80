package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/models"
)

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

func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	level, err := h.provider.RequestAccess(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.access").Msg("access request failed")
		http.Error(w, "access request failed", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, accessResponse{Level: level.String()})
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	assets, err := h.provider.FetchAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssets").Msg("error enumerating assets")
		http.Error(w, "error enumerating assets", statusFromError(err))
		return
	}

	body := make([]assetResponse, 0, len(assets))
	for _, asset := range assets {
		body = append(body, assetResponse{ID: asset.Ref.ID, CreatedAt: asset.CreatedAt})
	}

	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) assetImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ref := models.AssetRef{ID: chi.URLParam(r, "id")}
	size := models.ImageSize{
		Width:  queryInt(r, "w"),
		Height: queryInt(r, "h"),
	}

	image, err := h.provider.ResolveImage(r.Context(), ref, size)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assetImage").Str("asset", ref.ID).Msg("error resolving image")
		http.Error(w, "error resolving image", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}

func (h *Handler) deleteAssets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAssets").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if len(body.IDs) == 0 {
		http.Error(w, "no asset ids provided", http.StatusBadRequest)
		return
	}

	refs := make([]models.AssetRef, 0, len(body.IDs))
	for _, id := range body.IDs {
		refs = append(refs, models.AssetRef{ID: id})
	}

	if err := h.provider.Delete(r.Context(), refs); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAssets").Int("count", len(refs)).Msg("error deleting assets")
		http.Error(w, "error deleting assets", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
