package videourl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"limelight/utils/videourl"
)

func TestVideoIDKnownShapes(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"share link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch link with params", "https://www.youtube.com/watch?t=10&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"v link", "https://youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no scheme", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, videourl.VideoID(tc.url))
		})
	}
}

func TestVideoIDUnrecognisedURL(t *testing.T) {
	for _, url := range []string{
		"",
		"https://example.com/video",
		"https://vimeo.com/123456789",
		"https://youtu.be/short",
	} {
		assert.Empty(t, videourl.VideoID(url), "url %q", url)
	}
}

func TestDerivedURLs(t *testing.T) {
	url := "https://youtu.be/dQw4w9WgXcQ"
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg", videourl.Thumbnail(url))
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", videourl.EmbedURL(url))
}

func TestDerivedURLsAbsentForForeignURL(t *testing.T) {
	url := "https://example.com/video"
	assert.Empty(t, videourl.Thumbnail(url))
	assert.Empty(t, videourl.EmbedURL(url))
}
