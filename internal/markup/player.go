// Package markup turns player configurations into loadable HTML
// documents. Generation is pure string assembly: defined fields are
// rendered as tokens in declaration order and substituted into a static
// template, absent fields contribute no token.
package markup

import (
	"strings"

	"github.com/twitchembed/server/internal/domain"
)

const playerEmbedScriptURL = "https://player.twitch.tv/js/embed/v1.js"

const playerTemplate = `<!DOCTYPE html>
<html>
<head>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<style>html, body { margin: 0; padding: 0; height: 100%; overflow: {{overflow}}; }</style>
</head>
<body>
<div id="twitch-embed"></div>
<script src="` + playerEmbedScriptURL + `"></script>
<script type="text/javascript">
var pending = [];
var player = null;
var embed = new Twitch.Embed("twitch-embed", { {{options}} });
embed.addEventListener(Twitch.Embed.VIDEO_READY, function () {
  player = embed.getPlayer();
  for (var i = 0; i < pending.length; i++) { pending[i](player); }
  pending = [];
});
function dispatch(fn) {
  if (player !== null) { fn(player); } else { pending.push(fn); }
}
</script>
</body>
</html>
`

// Player renders the full-player document for cfg. Output is
// deterministic: token order follows the config's field declaration
// order, with the fixed width/height pair first.
func Player(cfg domain.PlayerConfig) string {
	tokens := []string{
		scriptToken("width", "100%"),
		scriptToken("height", "95%"),
	}

	if cfg.Channel != "" {
		tokens = append(tokens, scriptToken("channel", cfg.Channel))
	}
	if cfg.Video != "" {
		tokens = append(tokens, scriptToken("video", cfg.Video))
	}
	if cfg.Collection != "" {
		tokens = append(tokens, scriptToken("collection", cfg.Collection))
	}
	if cfg.Layout != "" {
		tokens = append(tokens, scriptToken("layout", string(cfg.Layout)))
	}
	if cfg.Theme != "" {
		tokens = append(tokens, scriptToken("theme", string(cfg.Theme)))
	}
	if cfg.ChatMode != "" {
		tokens = append(tokens, scriptToken("chat_mode", string(cfg.ChatMode)))
	}
	if cfg.Autoplay != nil {
		tokens = append(tokens, scriptBoolToken("autoplay", *cfg.Autoplay))
	}
	if cfg.Muted != nil {
		tokens = append(tokens, scriptBoolToken("muted", *cfg.Muted))
	}
	tokens = append(tokens, scriptBoolToken("allowfullscreen", cfg.AllowFullScreen))

	overflow := "hidden"
	if cfg.AllowScrolling {
		overflow = "auto"
	}

	return strings.NewReplacer(
		"{{options}}", strings.Join(tokens, ", "),
		"{{overflow}}", overflow,
	).Replace(playerTemplate)
}

// scriptToken renders a key for a script object literal context, where
// string values are quoted.
func scriptToken(key, value string) string {
	return key + `: "` + value + `"`
}

// scriptBoolToken renders booleans unquoted, as the script literal
// context requires.
func scriptBoolToken(key string, value bool) string {
	if value {
		return key + ": true"
	}

	return key + ": false"
}
