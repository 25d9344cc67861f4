package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (c controller) GetMux() http.Handler {
	r := chi.NewRouter()

	r.Use(c.requestIdMw)
	r.Use(c.requestLoggingMw)

	r.Post("/api/player", c.createPlayer)
	r.Post("/api/clip", c.createClip)
	r.Post("/api/player/{player-id}/reconfigure", c.reconfigurePlayer)
	r.Delete("/api/player/{player-id}", c.removePlayer)
	r.Get("/player/{player-id}", c.getPlayerDocument)

	r.HandleFunc("/ws/player/{player-id}", c.attachSurface)

	return r
}
