package twitchdata

import (
	"errors"
	"fmt"

	"github.com/nicklaw5/helix/v2"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrClipNotFound    = errors.New("clip not found")
)

type ChannelData struct {
	ID          string
	Login       string
	DisplayName string
}

type VideoData struct {
	ID       string
	Title    string
	UserName string
	Duration string
}

type ClipData struct {
	ID              string
	Title           string
	BroadcasterName string
}

type client interface {
	GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error)
	GetVideos(params *helix.VideosParams) (*helix.VideosResponse, error)
	GetClips(params *helix.ClipsParams) (*helix.ClipsResponse, error)
}

// Resolver looks up channel/video/clip references through the Helix API.
type Resolver struct {
	client client
}

func New(clientID, clientSecret string) (*Resolver, error) {
	c, err := helix.NewClient(&helix.Options{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create helix client: %w", err)
	}

	resp, err := c.RequestAppAccessToken(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to request app access token: %w", err)
	}
	if resp.ErrorStatus != 0 {
		return nil, fmt.Errorf("failed to request app access token: %d %s: %s", resp.ErrorStatus, resp.Error, resp.ErrorMessage)
	}

	c.SetAppAccessToken(resp.Data.AccessToken)

	return newWithClient(c), nil
}

func newWithClient(c client) *Resolver {
	return &Resolver{client: c}
}

func (r *Resolver) ResolveChannel(login string) (*ChannelData, error) {
	resp, err := r.client.GetUsers(&helix.UsersParams{
		Logins: []string{login},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	if len(resp.Data.Users) != 1 {
		return nil, ErrChannelNotFound
	}

	user := resp.Data.Users[0]

	return &ChannelData{
		ID:          user.ID,
		Login:       user.Login,
		DisplayName: user.DisplayName,
	}, nil
}

func (r *Resolver) ResolveVideo(videoID string) (*VideoData, error) {
	resp, err := r.client.GetVideos(&helix.VideosParams{
		IDs: []string{videoID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}

	if len(resp.Data.Videos) != 1 {
		return nil, ErrVideoNotFound
	}

	video := resp.Data.Videos[0]

	return &VideoData{
		ID:       video.ID,
		Title:    video.Title,
		UserName: video.UserName,
		Duration: video.Duration,
	}, nil
}

func (r *Resolver) ResolveClip(clipID string) (*ClipData, error) {
	resp, err := r.client.GetClips(&helix.ClipsParams{
		IDs: []string{clipID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get clips: %w", err)
	}

	if len(resp.Data.Clips) != 1 {
		return nil, ErrClipNotFound
	}

	clip := resp.Data.Clips[0]

	return &ClipData{
		ID:              clip.ID,
		Title:           clip.Title,
		BroadcasterName: clip.BroadcasterName,
	}, nil
}
