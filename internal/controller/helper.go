package controller

import (
	"errors"
	"net/http"

	"github.com/twitchembed/server/internal/service/player"
)

func (c controller) serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, player.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, player.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, player.ErrNotAPlayer):
		return http.StatusConflict
	case errors.Is(err, player.ErrSurfaceNotAttached):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
