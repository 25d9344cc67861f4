package player

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/twitchembed/server/internal/markup"
	"github.com/twitchembed/server/internal/repository/player"
	"github.com/twitchembed/server/internal/repository/surface"
)

// CheckControlToken authorizes a surface attach attempt before the
// connection is upgraded.
func (s service) CheckControlToken(ctx context.Context, playerID, token string) error {
	stored, err := s.playerRepo.GetControlToken(ctx, playerID)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get control token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return ErrPermissionDenied
	}

	return nil
}

type AttachSurfaceParams struct {
	PlayerID string
	Surface  surface.Surface
}

// AttachSurface registers the surface for the player and loads the
// current document into it. The new document's bridge starts not-ready.
func (s service) AttachSurface(ctx context.Context, params *AttachSurfaceParams) error {
	cfg, err := s.playerRepo.GetConfig(ctx, params.PlayerID)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get config: %w", err)
	}
	if cfg.Variant == player.VariantClip {
		return ErrNotAPlayer
	}

	att := surface.NewAttachment(params.Surface)
	if err := s.surfaceRepo.Add(params.PlayerID, att); err != nil {
		return fmt.Errorf("failed to add attachment: %w", err)
	}

	if err := att.Surface().Load(markup.Player(repoToPlayerConfig(cfg))); err != nil {
		s.surfaceRepo.Remove(params.PlayerID)
		return fmt.Errorf("failed to load document: %w", err)
	}

	return nil
}

// DetachSurface drops the attachment and with it any commands still
// queued for a document that never became ready.
func (s service) DetachSurface(ctx context.Context, playerID string) error {
	if err := s.surfaceRepo.Remove(playerID); err != nil {
		if errors.Is(err, surface.ErrNotAttached) {
			return ErrSurfaceNotAttached
		}
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	return nil
}

// SignalReady marks the loaded document's player as ready and drains
// the command queue.
func (s service) SignalReady(ctx context.Context, playerID string) error {
	att, err := s.surfaceRepo.Get(playerID)
	if err != nil {
		if errors.Is(err, surface.ErrNotAttached) {
			return ErrSurfaceNotAttached
		}
		return fmt.Errorf("failed to get attachment: %w", err)
	}

	if err := att.Bridge().SignalReady(); err != nil {
		return fmt.Errorf("failed to signal ready: %w", err)
	}

	return nil
}
