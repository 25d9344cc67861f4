package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/twitchembed/server/internal/repository/player"
	"github.com/twitchembed/server/internal/repository/surface"
	"github.com/twitchembed/server/pkg/randstr"
	"github.com/twitchembed/server/pkg/twitchdata"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSurfaceNotAttached = errors.New("surface not attached")
	ErrNotAPlayer         = errors.New("player does not support runtime control")
)

type iPlayerRepo interface {
	SetConfig(context.Context, *player.SetConfigParams) error
	GetConfig(context.Context, string) (player.Config, error)
	RemoveConfig(context.Context, string) error
	SetControlToken(context.Context, *player.SetControlTokenParams) error
	GetControlToken(context.Context, string) (string, error)
}

type iSurfaceRepo interface {
	Add(string, *surface.Attachment) error
	Get(string) (*surface.Attachment, error)
	Remove(string) error
}

type iResolver interface {
	ResolveChannel(login string) (*twitchdata.ChannelData, error)
	ResolveVideo(videoID string) (*twitchdata.VideoData, error)
	ResolveClip(clipID string) (*twitchdata.ClipData, error)
}

type iGenerator interface {
	GenerateRandomString(length int) string
}

type service struct {
	playerRepo  iPlayerRepo
	surfaceRepo iSurfaceRepo
	resolver    iResolver
	generator   iGenerator
	logger      *slog.Logger
}

// NewService wires the player orchestration. resolver may be nil, in
// which case content references are not probed against the Twitch API.
func NewService(playerRepo iPlayerRepo, surfaceRepo iSurfaceRepo, resolver iResolver, logger *slog.Logger) *service {
	s := service{
		playerRepo:  playerRepo,
		surfaceRepo: surfaceRepo,
		resolver:    resolver,
		logger:      logger,
	}

	letterBytes := []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	s.generator = randstr.New(letterBytes)

	return &s
}
