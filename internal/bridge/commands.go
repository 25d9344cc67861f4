package bridge

import (
	"fmt"
	"strconv"
)

// Command serializers. Each returns a script snippet invoking the named
// operation through the document's global dispatch function. Argument
// values are passed through untouched; range checks are left to the
// embedded player.

func Play() string {
	return `dispatch(function (p) { p.play(); });`
}

func Pause() string {
	return `dispatch(function (p) { p.pause(); });`
}

func ToggleState() string {
	return `dispatch(function (p) { if (p.isPaused()) { p.play(); } else { p.pause(); } });`
}

func SetVolume(level float64) string {
	return fmt.Sprintf(`dispatch(function (p) { p.setVolume(%s); });`, strconv.FormatFloat(level, 'g', -1, 64))
}

func SetVideo(videoID string, timestamp float64) string {
	return fmt.Sprintf(`dispatch(function (p) { p.setVideo(%q, %s); });`, videoID, strconv.FormatFloat(timestamp, 'g', -1, 64))
}

func SetChannel(channel string) string {
	return fmt.Sprintf(`dispatch(function (p) { p.setChannel(%q); });`, channel)
}

func SetCollection(collectionID, videoID string) string {
	if videoID == "" {
		return fmt.Sprintf(`dispatch(function (p) { p.setCollection(%q); });`, collectionID)
	}

	return fmt.Sprintf(`dispatch(function (p) { p.setCollection(%q, %q); });`, collectionID, videoID)
}
