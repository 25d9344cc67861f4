package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/twitchembed/server/internal/bridge"
	"github.com/twitchembed/server/internal/repository/surface"
)

func (s service) dispatch(playerID, script string) error {
	att, err := s.surfaceRepo.Get(playerID)
	if err != nil {
		if errors.Is(err, surface.ErrNotAttached) {
			return ErrSurfaceNotAttached
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if err := att.Bridge().Dispatch(script); err != nil {
		return fmt.Errorf("failed to dispatch command: %w", err)
	}

	return nil
}

func (s service) Play(ctx context.Context, playerID string) error {
	return s.dispatch(playerID, bridge.Play())
}

func (s service) Pause(ctx context.Context, playerID string) error {
	return s.dispatch(playerID, bridge.Pause())
}

func (s service) ToggleState(ctx context.Context, playerID string) error {
	return s.dispatch(playerID, bridge.ToggleState())
}

type SetVolumeParams struct {
	PlayerID string
	Level    float64
}

func (s service) SetVolume(ctx context.Context, params *SetVolumeParams) error {
	return s.dispatch(params.PlayerID, bridge.SetVolume(params.Level))
}

type SetVideoParams struct {
	PlayerID  string
	VideoID   string
	Timestamp float64
}

func (s service) SetVideo(ctx context.Context, params *SetVideoParams) error {
	return s.dispatch(params.PlayerID, bridge.SetVideo(params.VideoID, params.Timestamp))
}

type SetChannelParams struct {
	PlayerID string
	Channel  string
}

func (s service) SetChannel(ctx context.Context, params *SetChannelParams) error {
	return s.dispatch(params.PlayerID, bridge.SetChannel(params.Channel))
}

type SetCollectionParams struct {
	PlayerID     string
	CollectionID string
	VideoID      string
}

func (s service) SetCollection(ctx context.Context, params *SetCollectionParams) error {
	return s.dispatch(params.PlayerID, bridge.SetCollection(params.CollectionID, params.VideoID))
}
