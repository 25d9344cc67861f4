package domain

type PreloadMode string

const (
	PreloadNone     PreloadMode = "none"
	PreloadMetadata PreloadMode = "metadata"
	PreloadAuto     PreloadMode = "auto"
)

// ClipConfig describes a clip player. Clips are embedded as a plain
// iframe and expose no runtime control surface.
type ClipConfig struct {
	Clip            string      `json:"clip"`
	Autoplay        *bool       `json:"autoplay"`
	Muted           *bool       `json:"muted"`
	AllowFullScreen bool        `json:"allow_full_screen"`
	AllowScrolling  bool        `json:"allow_scrolling"`
	Preload         PreloadMode `json:"preload"`
}

func NewClipConfig(clipID string) ClipConfig {
	return ClipConfig{
		Clip:            clipID,
		AllowFullScreen: true,
	}
}
