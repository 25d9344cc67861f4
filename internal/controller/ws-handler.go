package controller

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/twitchembed/server/internal/service/player"
)

type Output struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type EmptyStruct struct{}

func (es *EmptyStruct) UnmarshalJSON([]byte) error {
	return nil
}

func (c controller) handleAlive(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	return nil
}

func (c controller) handleReady(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	if err := c.playerService.SignalReady(ctx, c.getPlayerIdFromCtx(ctx)); err != nil {
		return fmt.Errorf("failed to signal ready: %w", err)
	}

	return nil
}

func (c controller) handlePlay(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	if err := c.playerService.Play(ctx, c.getPlayerIdFromCtx(ctx)); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}

	return nil
}

func (c controller) handlePause(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	if err := c.playerService.Pause(ctx, c.getPlayerIdFromCtx(ctx)); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}

	return nil
}

func (c controller) handleToggleState(ctx context.Context, conn *websocket.Conn, input EmptyStruct) error {
	if err := c.playerService.ToggleState(ctx, c.getPlayerIdFromCtx(ctx)); err != nil {
		return fmt.Errorf("failed to toggle state: %w", err)
	}

	return nil
}

type SetVolumeInput struct {
	Level float64 `json:"level"`
}

func (c controller) handleSetVolume(ctx context.Context, conn *websocket.Conn, input SetVolumeInput) error {
	// no range check; out-of-range levels are the embedded player's
	// problem
	if err := c.playerService.SetVolume(ctx, &player.SetVolumeParams{
		PlayerID: c.getPlayerIdFromCtx(ctx),
		Level:    input.Level,
	}); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}

	return nil
}

type SetVideoInput struct {
	VideoId   string  `json:"video_id"`
	Timestamp float64 `json:"timestamp"`
}

func (c controller) handleSetVideo(ctx context.Context, conn *websocket.Conn, input SetVideoInput) error {
	if err := c.playerService.SetVideo(ctx, &player.SetVideoParams{
		PlayerID:  c.getPlayerIdFromCtx(ctx),
		VideoID:   input.VideoId,
		Timestamp: input.Timestamp,
	}); err != nil {
		return fmt.Errorf("failed to set video: %w", err)
	}

	return nil
}

type SetChannelInput struct {
	Channel string `json:"channel"`
}

func (c controller) handleSetChannel(ctx context.Context, conn *websocket.Conn, input SetChannelInput) error {
	if err := c.playerService.SetChannel(ctx, &player.SetChannelParams{
		PlayerID: c.getPlayerIdFromCtx(ctx),
		Channel:  input.Channel,
	}); err != nil {
		return fmt.Errorf("failed to set channel: %w", err)
	}

	return nil
}

type SetCollectionInput struct {
	CollectionId string `json:"collection_id"`
	VideoId      string `json:"video_id"`
}

func (c controller) handleSetCollection(ctx context.Context, conn *websocket.Conn, input SetCollectionInput) error {
	if err := c.playerService.SetCollection(ctx, &player.SetCollectionParams{
		PlayerID:     c.getPlayerIdFromCtx(ctx),
		CollectionID: input.CollectionId,
		VideoID:      input.VideoId,
	}); err != nil {
		return fmt.Errorf("failed to set collection: %w", err)
	}

	return nil
}
