package player

// Variant discriminates the two document families stored for a player
// instance.
const (
	VariantPlayer = "player"
	VariantClip   = "clip"
)

// Config is the stored shape of a player instance. Nil pointer fields
// are absent, not false.
type Config struct {
	Variant         string `redis:"variant"`
	Channel         string `redis:"channel"`
	Video           string `redis:"video"`
	Collection      string `redis:"collection"`
	Clip            string `redis:"clip"`
	Layout          string `redis:"layout"`
	Theme           string `redis:"theme"`
	ChatMode        string `redis:"chat_mode"`
	Autoplay        *bool  `redis:"autoplay"`
	Muted           *bool  `redis:"muted"`
	AllowFullScreen bool   `redis:"allowfullscreen"`
	AllowScrolling  bool   `redis:"allow_scrolling"`
	Preload         string `redis:"preload"`
}
