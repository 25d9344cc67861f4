package twitchdata

import (
	"testing"

	"github.com/nicklaw5/helix/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientMock struct {
	users  []helix.User
	videos []helix.Video
	clips  []helix.Clip
}

func (c *clientMock) GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error) {
	resp := helix.UsersResponse{}
	resp.Data.Users = c.users
	return &resp, nil
}

func (c *clientMock) GetVideos(params *helix.VideosParams) (*helix.VideosResponse, error) {
	resp := helix.VideosResponse{}
	resp.Data.Videos = c.videos
	return &resp, nil
}

func (c *clientMock) GetClips(params *helix.ClipsParams) (*helix.ClipsResponse, error) {
	resp := helix.ClipsResponse{}
	resp.Data.Clips = c.clips
	return &resp, nil
}

func TestResolveChannel(t *testing.T) {
	r := newWithClient(&clientMock{
		users: []helix.User{{ID: "123", Login: "monstercat", DisplayName: "Monstercat"}},
	})

	channel, err := r.ResolveChannel("monstercat")
	require.NoError(t, err)
	assert.Equal(t, "123", channel.ID)
	assert.Equal(t, "monstercat", channel.Login)
	assert.Equal(t, "Monstercat", channel.DisplayName)
}

func TestResolveChannelNotFound(t *testing.T) {
	r := newWithClient(&clientMock{})

	_, err := r.ResolveChannel("nosuchchannel")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestResolveVideo(t *testing.T) {
	r := newWithClient(&clientMock{
		videos: []helix.Video{{ID: "1337", Title: "vod", UserName: "streamer", Duration: "1h2m3s"}},
	})

	video, err := r.ResolveVideo("1337")
	require.NoError(t, err)
	assert.Equal(t, "1337", video.ID)
	assert.Equal(t, "vod", video.Title)
}

func TestResolveClipNotFound(t *testing.T) {
	r := newWithClient(&clientMock{})

	_, err := r.ResolveClip("NoSuchClip")
	assert.ErrorIs(t, err, ErrClipNotFound)
}
