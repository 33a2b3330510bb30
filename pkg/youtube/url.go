package youtube

import (
	"regexp"
	"strings"
)

// YouTube video identifiers are always 11 characters from this alphabet.
const videoIDLength = 11

var (
	// Covers the three canonical URL shapes: watch?v=, youtu.be/ and embed/.
	primaryPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)

	// Looser fallback for watch URLs where v= is not the first query param.
	watchParamPattern = regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`)

	bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractVideoID pulls the 11-character video identifier out of a YouTube URL.
// A bare identifier pasted without a URL is accepted as-is. Returns false when
// no identifier could be found.
func ExtractVideoID(input string) (string, bool) {
	input = strings.TrimSpace(input)

	if match := primaryPattern.FindStringSubmatch(input); match != nil {
		return match[1], true
	}
	if match := watchParamPattern.FindStringSubmatch(input); match != nil {
		return match[1], true
	}

	if len(input) == videoIDLength && bareIDPattern.MatchString(input) {
		return input, true
	}

	return "", false
}

// LooksLikeYouTubeURL reports whether the input mentions a YouTube host at
// all. Extraction failure does not reject such inputs; the backend performs
// the authoritative validation.
func LooksLikeYouTubeURL(input string) bool {
	return strings.Contains(input, "youtube.com") || strings.Contains(input, "youtu.be")
}

// WatchURL returns the canonical watch page URL for a video identifier.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
