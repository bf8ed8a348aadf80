package http

import (
	"errors"
	"net/http"

	"github.com/snapsift/snapsift/internal/provider"
)

var errorStatusMap = map[error]int{
	provider.ErrBadRequest:   http.StatusBadRequest,
	provider.ErrUnauthorized: http.StatusUnauthorized,
	provider.ErrForbidden:    http.StatusForbidden,
	provider.ErrNotFound:     http.StatusNotFound,
	provider.ErrUnavailable:  http.StatusServiceUnavailable,
	provider.ErrInternal:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
