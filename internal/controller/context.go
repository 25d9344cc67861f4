package controller

import "context"

type ctxKey string

const playerIdKey ctxKey = "player_id"

func (c controller) getPlayerIdFromCtx(ctx context.Context) string {
	playerId, _ := ctx.Value(playerIdKey).(string)
	return playerId
}
