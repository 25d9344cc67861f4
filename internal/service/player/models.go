package player

import (
	"github.com/twitchembed/server/internal/domain"
	"github.com/twitchembed/server/internal/repository/player"
)

func playerToRepoConfig(cfg domain.PlayerConfig) player.Config {
	return player.Config{
		Variant:         player.VariantPlayer,
		Channel:         cfg.Channel,
		Video:           cfg.Video,
		Collection:      cfg.Collection,
		Layout:          string(cfg.Layout),
		Theme:           string(cfg.Theme),
		ChatMode:        string(cfg.ChatMode),
		Autoplay:        cfg.Autoplay,
		Muted:           cfg.Muted,
		AllowFullScreen: cfg.AllowFullScreen,
		AllowScrolling:  cfg.AllowScrolling,
	}
}

func clipToRepoConfig(cfg domain.ClipConfig) player.Config {
	return player.Config{
		Variant:         player.VariantClip,
		Clip:            cfg.Clip,
		Autoplay:        cfg.Autoplay,
		Muted:           cfg.Muted,
		AllowFullScreen: cfg.AllowFullScreen,
		AllowScrolling:  cfg.AllowScrolling,
		Preload:         string(cfg.Preload),
	}
}

func repoToPlayerConfig(cfg player.Config) domain.PlayerConfig {
	return domain.PlayerConfig{
		Channel:         cfg.Channel,
		Video:           cfg.Video,
		Collection:      cfg.Collection,
		Layout:          domain.PlayerLayout(cfg.Layout),
		Theme:           domain.PlayerTheme(cfg.Theme),
		ChatMode:        domain.ChatMode(cfg.ChatMode),
		Autoplay:        cfg.Autoplay,
		Muted:           cfg.Muted,
		AllowFullScreen: cfg.AllowFullScreen,
		AllowScrolling:  cfg.AllowScrolling,
	}
}

func repoToClipConfig(cfg player.Config) domain.ClipConfig {
	return domain.ClipConfig{
		Clip:            cfg.Clip,
		Autoplay:        cfg.Autoplay,
		Muted:           cfg.Muted,
		AllowFullScreen: cfg.AllowFullScreen,
		AllowScrolling:  cfg.AllowScrolling,
		Preload:         domain.PreloadMode(cfg.Preload),
	}
}
