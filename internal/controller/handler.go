package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/twitchembed/server/internal/service/player"
	"github.com/twitchembed/server/pkg/rest"
)

// attachSurface upgrades the connection and registers the client as the
// player's embedding surface. The client immediately receives a LOAD
// frame with the current document and from then on EVAL frames for
// dispatched commands; inbound messages drive the command bridge.
func (c controller) attachSurface(w http.ResponseWriter, r *http.Request) {
	playerId := chi.URLParam(r, "player-id")
	token := r.URL.Query().Get("token")

	if err := c.playerService.CheckControlToken(r.Context(), playerId, token); err != nil {
		c.logger.DebugContext(r.Context(), "failed to check control token", "error", err)
		rest.WriteJSON(w, c.serviceErrorStatus(err), rest.Envelope{"error": err.Error()})
		return
	}

	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.WarnContext(r.Context(), "failed to upgrade to websocket", "error", err)
		return
	}

	s := newWSSurface(conn)
	if err := c.playerService.AttachSurface(r.Context(), &player.AttachSurfaceParams{
		PlayerID: playerId,
		Surface:  s,
	}); err != nil {
		c.logger.WarnContext(r.Context(), "failed to attach surface", "error", err)
		s.send(&Output{Type: "ERROR", Payload: map[string]any{"error": err.Error()}})
		conn.Close()
		return
	}
	defer c.playerService.DetachSurface(context.WithoutCancel(r.Context()), playerId)

	ctx := context.WithValue(r.Context(), playerIdKey, playerId)
	if err := c.getWSRouter().ServeConn(ctx, conn); err != nil {
		c.logger.DebugContext(ctx, "websocket connection closed", "error", err)
	}
}
