package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/twitchembed/server/internal/repository/player"
)

func (r repo) getConfigKey(playerID string) string {
	return "player:" + playerID + ":config"
}

func (r repo) getControlTokenKey(playerID string) string {
	return "player:" + playerID + ":token"
}

func (r repo) SetConfig(ctx context.Context, params *player.SetConfigParams) error {
	fields := map[string]any{
		"variant":         params.Config.Variant,
		"channel":         params.Config.Channel,
		"video":           params.Config.Video,
		"collection":      params.Config.Collection,
		"clip":            params.Config.Clip,
		"layout":          params.Config.Layout,
		"theme":           params.Config.Theme,
		"chat_mode":       params.Config.ChatMode,
		"allowfullscreen": params.Config.AllowFullScreen,
		"allow_scrolling": params.Config.AllowScrolling,
		"preload":         params.Config.Preload,
	}
	if params.Config.Autoplay != nil {
		fields["autoplay"] = *params.Config.Autoplay
	}
	if params.Config.Muted != nil {
		fields["muted"] = *params.Config.Muted
	}

	configKey := r.getConfigKey(params.PlayerID)
	pipe := r.rc.TxPipeline()
	// stale optional fields must not survive a reconfigure
	pipe.Del(ctx, configKey)
	pipe.HSet(ctx, configKey, fields)
	pipe.Expire(ctx, configKey, r.expireDuration)

	if err := r.executePipe(ctx, pipe); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	return nil
}

func (r repo) GetConfig(ctx context.Context, playerID string) (player.Config, error) {
	configKey := r.getConfigKey(playerID)
	fields, err := r.rc.HGetAll(ctx, configKey).Result()
	if err != nil {
		return player.Config{}, fmt.Errorf("failed to get config: %w", err)
	}

	if len(fields) == 0 {
		return player.Config{}, player.ErrPlayerNotFound
	}

	r.rc.Expire(ctx, configKey, r.expireDuration)

	return player.Config{
		Variant:         fields["variant"],
		Channel:         fields["channel"],
		Video:           fields["video"],
		Collection:      fields["collection"],
		Clip:            fields["clip"],
		Layout:          fields["layout"],
		Theme:           fields["theme"],
		ChatMode:        fields["chat_mode"],
		Autoplay:        r.fieldToOptionalBool(fields, "autoplay"),
		Muted:           r.fieldToOptionalBool(fields, "muted"),
		AllowFullScreen: r.fieldToBool(fields["allowfullscreen"]),
		AllowScrolling:  r.fieldToBool(fields["allow_scrolling"]),
		Preload:         fields["preload"],
	}, nil
}

func (r repo) RemoveConfig(ctx context.Context, playerID string) error {
	res, err := r.rc.Del(ctx, r.getConfigKey(playerID), r.getControlTokenKey(playerID)).Result()
	if err != nil {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	if res == 0 {
		return player.ErrPlayerNotFound
	}

	return nil
}

func (r repo) SetControlToken(ctx context.Context, params *player.SetControlTokenParams) error {
	if err := r.rc.Set(ctx, r.getControlTokenKey(params.PlayerID), params.Token, r.expireDuration).Err(); err != nil {
		return fmt.Errorf("failed to set control token: %w", err)
	}

	return nil
}

func (r repo) GetControlToken(ctx context.Context, playerID string) (string, error) {
	tokenKey := r.getControlTokenKey(playerID)
	token, err := r.rc.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", player.ErrPlayerNotFound
		}
		return "", fmt.Errorf("failed to get control token: %w", err)
	}

	r.rc.Expire(ctx, tokenKey, r.expireDuration)

	return token, nil
}
