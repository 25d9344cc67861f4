package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/twitchembed/server/internal/domain"
	"github.com/twitchembed/server/internal/markup"
	"github.com/twitchembed/server/internal/repository/player"
	"github.com/twitchembed/server/internal/repository/surface"
)

const controlTokenLength = 32

type CreatePlayerParams struct {
	Config domain.PlayerConfig
}

type CreatePlayerResponse struct {
	PlayerID     string
	ControlToken string
	Document     string
}

func (s service) CreatePlayer(ctx context.Context, params *CreatePlayerParams) (CreatePlayerResponse, error) {
	if params.Config.ContentReferenceCount() > 1 {
		// the player decides which reference wins; render all, warn
		s.logger.WarnContext(ctx, "multiple content references set",
			"channel", params.Config.Channel,
			"video", params.Config.Video,
			"collection", params.Config.Collection,
		)
	}

	s.probeContentReference(ctx, params.Config)

	playerID := uuid.NewString()
	controlToken := s.generator.GenerateRandomString(controlTokenLength)

	if err := s.playerRepo.SetConfig(ctx, &player.SetConfigParams{
		PlayerID: playerID,
		Config:   playerToRepoConfig(params.Config),
	}); err != nil {
		return CreatePlayerResponse{}, fmt.Errorf("failed to set config: %w", err)
	}

	if err := s.playerRepo.SetControlToken(ctx, &player.SetControlTokenParams{
		PlayerID: playerID,
		Token:    controlToken,
	}); err != nil {
		return CreatePlayerResponse{}, fmt.Errorf("failed to set control token: %w", err)
	}

	return CreatePlayerResponse{
		PlayerID:     playerID,
		ControlToken: controlToken,
		Document:     markup.Player(params.Config),
	}, nil
}

type CreateClipParams struct {
	Config domain.ClipConfig
}

type CreateClipResponse struct {
	PlayerID string
	Document string
}

func (s service) CreateClip(ctx context.Context, params *CreateClipParams) (CreateClipResponse, error) {
	if s.resolver != nil && params.Config.Clip != "" {
		if _, err := s.resolver.ResolveClip(params.Config.Clip); err != nil {
			s.logger.WarnContext(ctx, "failed to resolve clip", "clip", params.Config.Clip, "error", err)
		}
	}

	playerID := uuid.NewString()

	if err := s.playerRepo.SetConfig(ctx, &player.SetConfigParams{
		PlayerID: playerID,
		Config:   clipToRepoConfig(params.Config),
	}); err != nil {
		return CreateClipResponse{}, fmt.Errorf("failed to set config: %w", err)
	}

	return CreateClipResponse{
		PlayerID: playerID,
		Document: markup.Clip(params.Config),
	}, nil
}

// GetDocument regenerates the current document from the stored config.
func (s service) GetDocument(ctx context.Context, playerID string) (string, error) {
	cfg, err := s.playerRepo.GetConfig(ctx, playerID)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return "", ErrPlayerNotFound
		}
		return "", fmt.Errorf("failed to get config: %w", err)
	}

	if cfg.Variant == player.VariantClip {
		return markup.Clip(repoToClipConfig(cfg)), nil
	}

	return markup.Player(repoToPlayerConfig(cfg)), nil
}

type ReconfigureParams struct {
	PlayerID string
	Config   domain.PlayerConfig
}

type ReconfigureResponse struct {
	Document string
}

// Reconfigure replaces the stored config, regenerates the document and
// reloads the attached surface. The reload discards the old document's
// command queue along with its runtime state.
func (s service) Reconfigure(ctx context.Context, params *ReconfigureParams) (ReconfigureResponse, error) {
	current, err := s.playerRepo.GetConfig(ctx, params.PlayerID)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return ReconfigureResponse{}, ErrPlayerNotFound
		}
		return ReconfigureResponse{}, fmt.Errorf("failed to get config: %w", err)
	}
	if current.Variant == player.VariantClip {
		return ReconfigureResponse{}, ErrNotAPlayer
	}

	if params.Config.ContentReferenceCount() > 1 {
		s.logger.WarnContext(ctx, "multiple content references set",
			"channel", params.Config.Channel,
			"video", params.Config.Video,
			"collection", params.Config.Collection,
		)
	}

	if err := s.playerRepo.SetConfig(ctx, &player.SetConfigParams{
		PlayerID: params.PlayerID,
		Config:   playerToRepoConfig(params.Config),
	}); err != nil {
		return ReconfigureResponse{}, fmt.Errorf("failed to set config: %w", err)
	}

	document := markup.Player(params.Config)

	att, err := s.surfaceRepo.Get(params.PlayerID)
	if err != nil {
		if errors.Is(err, surface.ErrNotAttached) {
			// nothing to reload; the next attach loads the new document
			return ReconfigureResponse{Document: document}, nil
		}
		return ReconfigureResponse{}, fmt.Errorf("failed to get attachment: %w", err)
	}

	att.ResetBridge()
	if err := att.Surface().Load(document); err != nil {
		return ReconfigureResponse{}, fmt.Errorf("failed to load document: %w", err)
	}

	return ReconfigureResponse{Document: document}, nil
}

func (s service) RemovePlayer(ctx context.Context, playerID string) error {
	if err := s.playerRepo.RemoveConfig(ctx, playerID); err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to remove config: %w", err)
	}

	if err := s.surfaceRepo.Remove(playerID); err != nil && !errors.Is(err, surface.ErrNotAttached) {
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	return nil
}

func (s service) probeContentReference(ctx context.Context, cfg domain.PlayerConfig) {
	if s.resolver == nil {
		return
	}

	if cfg.Channel != "" {
		if _, err := s.resolver.ResolveChannel(cfg.Channel); err != nil {
			s.logger.WarnContext(ctx, "failed to resolve channel", "channel", cfg.Channel, "error", err)
		}
	}
	if cfg.Video != "" {
		if _, err := s.resolver.ResolveVideo(cfg.Video); err != nil {
			s.logger.WarnContext(ctx, "failed to resolve video", "video", cfg.Video, "error", err)
		}
	}
}
