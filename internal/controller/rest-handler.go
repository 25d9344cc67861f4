package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/twitchembed/server/internal/domain"
	"github.com/twitchembed/server/internal/service/player"
	"github.com/twitchembed/server/pkg/rest"
)

type playerConfigRequest struct {
	Channel         string `json:"channel" validate:"omitempty,max=64"`
	Video           string `json:"video" validate:"omitempty,max=64"`
	Collection      string `json:"collection" validate:"omitempty,max=64"`
	Layout          string `json:"layout" validate:"omitempty,oneof=video video-with-chat"`
	Theme           string `json:"theme" validate:"omitempty,oneof=light dark"`
	ChatMode        string `json:"chat_mode" validate:"omitempty,oneof=default mobile"`
	Autoplay        *bool  `json:"autoplay"`
	Muted           *bool  `json:"muted"`
	AllowFullScreen *bool  `json:"allow_full_screen"`
	AllowScrolling  *bool  `json:"allow_scrolling"`
}

func (req playerConfigRequest) toDomain() domain.PlayerConfig {
	cfg := domain.NewPlayerConfig()
	cfg.Channel = req.Channel
	cfg.Video = req.Video
	cfg.Collection = req.Collection
	cfg.Layout = domain.PlayerLayout(req.Layout)
	cfg.Theme = domain.PlayerTheme(req.Theme)
	cfg.ChatMode = domain.ChatMode(req.ChatMode)
	cfg.Autoplay = req.Autoplay
	cfg.Muted = req.Muted
	if req.AllowFullScreen != nil {
		cfg.AllowFullScreen = *req.AllowFullScreen
	}
	if req.AllowScrolling != nil {
		cfg.AllowScrolling = *req.AllowScrolling
	}

	return cfg
}

type createPlayerResponse struct {
	PlayerID     string `json:"player_id"`
	ControlToken string `json:"control_token"`
}

func (c controller) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerConfigRequest

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.DebugContext(r.Context(), "validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	createPlayerResp, err := c.playerService.CreatePlayer(r.Context(), &player.CreatePlayerParams{
		Config: req.toDomain(),
	})
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to create player", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": createPlayerResponse{
		PlayerID:     createPlayerResp.PlayerID,
		ControlToken: createPlayerResp.ControlToken,
	}})
}

type clipConfigRequest struct {
	Clip            string `json:"clip" validate:"required,max=128"`
	Autoplay        *bool  `json:"autoplay"`
	Muted           *bool  `json:"muted"`
	AllowFullScreen *bool  `json:"allow_full_screen"`
	AllowScrolling  *bool  `json:"allow_scrolling"`
	Preload         string `json:"preload" validate:"omitempty,oneof=none metadata auto"`
}

func (req clipConfigRequest) toDomain() domain.ClipConfig {
	cfg := domain.NewClipConfig(req.Clip)
	cfg.Autoplay = req.Autoplay
	cfg.Muted = req.Muted
	if req.AllowFullScreen != nil {
		cfg.AllowFullScreen = *req.AllowFullScreen
	}
	if req.AllowScrolling != nil {
		cfg.AllowScrolling = *req.AllowScrolling
	}
	cfg.Preload = domain.PreloadMode(req.Preload)

	return cfg
}

type createClipResponse struct {
	PlayerID string `json:"player_id"`
}

func (c controller) createClip(w http.ResponseWriter, r *http.Request) {
	var req clipConfigRequest

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.DebugContext(r.Context(), "validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	createClipResp, err := c.playerService.CreateClip(r.Context(), &player.CreateClipParams{
		Config: req.toDomain(),
	})
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to create clip", "error", err)
		rest.WriteJSON(w, http.StatusInternalServerError, rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.Envelope{"data": createClipResponse{
		PlayerID: createClipResp.PlayerID,
	}})
}

func (c controller) reconfigurePlayer(w http.ResponseWriter, r *http.Request) {
	playerId := chi.URLParam(r, "player-id")

	var req playerConfigRequest

	if err := rest.ReadJSON(r, &req); err != nil {
		c.logger.DebugContext(r.Context(), "failed to read json", "error", err)
		rest.WriteJSON(w, http.StatusUnprocessableEntity, rest.Envelope{"error": err.Error()})
		return
	}

	if validationErrors, ok := c.validate.Validate(req); !ok {
		c.logger.DebugContext(r.Context(), "validation failed", "errors", validationErrors)
		rest.WriteJSON(w, http.StatusBadRequest, rest.Envelope{"errors": validationErrors})
		return
	}

	if _, err := c.playerService.Reconfigure(r.Context(), &player.ReconfigureParams{
		PlayerID: playerId,
		Config:   req.toDomain(),
	}); err != nil {
		c.logger.DebugContext(r.Context(), "failed to reconfigure player", "error", err)
		rest.WriteJSON(w, c.serviceErrorStatus(err), rest.Envelope{"error": err.Error()})
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.Envelope{"data": "reconfigured"})
}

func (c controller) removePlayer(w http.ResponseWriter, r *http.Request) {
	playerId := chi.URLParam(r, "player-id")

	if err := c.playerService.RemovePlayer(r.Context(), playerId); err != nil {
		c.logger.DebugContext(r.Context(), "failed to remove player", "error", err)
		rest.WriteJSON(w, c.serviceErrorStatus(err), rest.Envelope{"error": err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c controller) getPlayerDocument(w http.ResponseWriter, r *http.Request) {
	playerId := chi.URLParam(r, "player-id")

	document, err := c.playerService.GetDocument(r.Context(), playerId)
	if err != nil {
		c.logger.DebugContext(r.Context(), "failed to get document", "error", err)
		rest.WriteJSON(w, c.serviceErrorStatus(err), rest.Envelope{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(document))
}
