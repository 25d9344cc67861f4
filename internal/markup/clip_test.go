package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twitchembed/server/internal/domain"
)

func TestClipDefaults(t *testing.T) {
	cfg := domain.NewClipConfig("AwkwardHelplessSalamanderSwiftRage")

	expected := `<iframe src="https://clips.twitch.tv/embed?clip=AwkwardHelplessSalamanderSwiftRage" width="100%" height="100%" frameborder="0" allowfullscreen="true" scrolling="no"></iframe>`
	assert.Equal(t, expected, Clip(cfg))
}

func TestClipAllFields(t *testing.T) {
	autoplay := true
	muted := false

	cfg := domain.NewClipConfig("AwkwardHelplessSalamanderSwiftRage")
	cfg.Autoplay = &autoplay
	cfg.Muted = &muted
	cfg.AllowFullScreen = false
	cfg.AllowScrolling = true
	cfg.Preload = domain.PreloadMetadata

	expected := `<iframe src="https://clips.twitch.tv/embed?clip=AwkwardHelplessSalamanderSwiftRage" width="100%" height="100%" frameborder="0" autoplay="true" muted="false" allowfullscreen="false" scrolling="yes" preload="metadata"></iframe>`
	assert.Equal(t, expected, Clip(cfg))
}

func TestClipBooleansQuoted(t *testing.T) {
	autoplay := true

	cfg := domain.NewClipConfig("SomeClip")
	cfg.Autoplay = &autoplay

	fragment := Clip(cfg)
	assert.Contains(t, fragment, `autoplay="true"`)
	assert.Contains(t, fragment, `allowfullscreen="true"`)
}

func TestClipScrollingYesNo(t *testing.T) {
	cfg := domain.NewClipConfig("SomeClip")

	assert.Contains(t, Clip(cfg), `scrolling="no"`)
	assert.NotContains(t, Clip(cfg), `scrolling="false"`)

	cfg.AllowScrolling = true
	assert.Contains(t, Clip(cfg), `scrolling="yes"`)
	assert.NotContains(t, Clip(cfg), `scrolling="true"`)
}

func TestClipDeterministic(t *testing.T) {
	cfg := domain.NewClipConfig("SomeClip")
	cfg.Preload = domain.PreloadAuto

	assert.Equal(t, Clip(cfg), Clip(cfg))
}
