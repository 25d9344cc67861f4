package markup

import (
	"strings"

	"github.com/twitchembed/server/internal/domain"
)

const clipEmbedURL = "https://clips.twitch.tv/embed?clip="

const clipTemplate = `<iframe src="` + clipEmbedURL + `{{clip}}" width="100%" height="100%" frameborder="0" {{attributes}}></iframe>`

// Clip renders the clip-player iframe fragment for cfg. Attribute
// values are always quoted; scrolling takes only "yes"/"no", never a
// bare boolean.
func Clip(cfg domain.ClipConfig) string {
	var tokens []string

	if cfg.Autoplay != nil {
		tokens = append(tokens, attrBoolToken("autoplay", *cfg.Autoplay))
	}
	if cfg.Muted != nil {
		tokens = append(tokens, attrBoolToken("muted", *cfg.Muted))
	}
	tokens = append(tokens, attrBoolToken("allowfullscreen", cfg.AllowFullScreen))

	scrolling := "no"
	if cfg.AllowScrolling {
		scrolling = "yes"
	}
	tokens = append(tokens, attrToken("scrolling", scrolling))

	if cfg.Preload != "" {
		tokens = append(tokens, attrToken("preload", string(cfg.Preload)))
	}

	return strings.NewReplacer(
		"{{clip}}", cfg.Clip,
		"{{attributes}}", strings.Join(tokens, " "),
	).Replace(clipTemplate)
}

func attrToken(key, value string) string {
	return key + `="` + value + `"`
}

// attrBoolToken renders booleans as quoted strings, as the HTML
// attribute context requires.
func attrBoolToken(key string, value bool) string {
	if value {
		return key + `="true"`
	}

	return key + `="false"`
}
