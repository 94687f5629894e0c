// Package videourl derives embeddable metadata from YouTube share links.
// Everything here is a pure function of the stored URL; nothing is cached
// or persisted. An unrecognised URL yields empty strings, which callers
// must treat as "no video", not as an error.
package videourl

import "regexp"

// Matches watch, share, embed and /v/ URL shapes; the capture group is the
// 11-character video id.
var idPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// VideoID extracts the YouTube video id from a URL, or "" when the URL does
// not match any known YouTube shape.
func VideoID(url string) string {
	if url == "" {
		return ""
	}
	m := idPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// Thumbnail returns the default thumbnail URL for a video, or "".
func Thumbnail(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/0.jpg"
}

// EmbedURL returns the iframe-embeddable URL for a video, or "".
func EmbedURL(url string) string {
	id := VideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
