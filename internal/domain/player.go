package domain

type PlayerLayout string

const (
	LayoutVideo         PlayerLayout = "video"
	LayoutVideoWithChat PlayerLayout = "video-with-chat"
)

type PlayerTheme string

const (
	ThemeLight PlayerTheme = "light"
	ThemeDark  PlayerTheme = "dark"
)

type ChatMode string

const (
	ChatModeDefault ChatMode = "default"
	ChatModeMobile  ChatMode = "mobile"
)

// PlayerConfig describes a full (non-clip) player. String fields left
// empty and nil pointers are omitted from the generated document.
// Exactly one of Channel, Video and Collection is meant to be the
// authoritative content reference; setting several at once is rendered
// as-is, the embedded player decides what wins.
type PlayerConfig struct {
	Channel         string       `json:"channel"`
	Video           string       `json:"video"`
	Collection      string       `json:"collection"`
	Layout          PlayerLayout `json:"layout"`
	Theme           PlayerTheme  `json:"theme"`
	ChatMode        ChatMode     `json:"chat_mode"`
	Autoplay        *bool        `json:"autoplay"`
	Muted           *bool        `json:"muted"`
	AllowFullScreen bool         `json:"allow_full_screen"`
	AllowScrolling  bool         `json:"allow_scrolling"`
}

// NewPlayerConfig returns a config with the documented defaults:
// full-screen allowed, scrolling disallowed, everything else unset.
func NewPlayerConfig() PlayerConfig {
	return PlayerConfig{
		AllowFullScreen: true,
	}
}

// ContentReferenceCount reports how many of the mutually exclusive
// content references are set.
func (c PlayerConfig) ContentReferenceCount() int {
	count := 0
	for _, ref := range []string{c.Channel, c.Video, c.Collection} {
		if ref != "" {
			count++
		}
	}

	return count
}
