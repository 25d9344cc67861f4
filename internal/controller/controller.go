package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/twitchembed/server/internal/service/player"
	"github.com/twitchembed/server/pkg/validator"
)

type iPlayerService interface {
	CreatePlayer(context.Context, *player.CreatePlayerParams) (player.CreatePlayerResponse, error)
	CreateClip(context.Context, *player.CreateClipParams) (player.CreateClipResponse, error)
	GetDocument(context.Context, string) (string, error)
	Reconfigure(context.Context, *player.ReconfigureParams) (player.ReconfigureResponse, error)
	RemovePlayer(context.Context, string) error
	CheckControlToken(ctx context.Context, playerID, token string) error
	AttachSurface(context.Context, *player.AttachSurfaceParams) error
	DetachSurface(context.Context, string) error
	SignalReady(context.Context, string) error
	Play(context.Context, string) error
	Pause(context.Context, string) error
	ToggleState(context.Context, string) error
	SetVolume(context.Context, *player.SetVolumeParams) error
	SetVideo(context.Context, *player.SetVideoParams) error
	SetChannel(context.Context, *player.SetChannelParams) error
	SetCollection(context.Context, *player.SetCollectionParams) error
}

type controller struct {
	playerService iPlayerService
	upgrader      websocket.Upgrader
	validate      *validator.Validator
	logger        *slog.Logger
}

func NewController(playerService iPlayerService, logger *slog.Logger) *controller {
	return &controller{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		playerService: playerService,
		validate:      validator.NewValidator(),
		logger:        logger,
	}
}
