package videoapi

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

func TestConvertVideo(t *testing.T) {
	item := &youtube.Video{
		Id: "dQw4w9WgXcQ",
		Snippet: &youtube.VideoSnippet{
			Title:        "Test Song",
			Description:  "A test description",
			ChannelTitle: "Test Channel",
			PublishedAt:  "2009-10-25T06:57:33Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "https://example.com/default.jpg"},
				Medium:  &youtube.Thumbnail{Url: "https://example.com/medium.jpg"},
				High:    &youtube.Thumbnail{Url: "https://example.com/high.jpg"},
			},
		},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT3M33S"},
		Statistics:     &youtube.VideoStatistics{ViewCount: 1700000000},
	}

	video := convertVideo(item)

	assert.Equal(t, "dQw4w9WgXcQ", video.ID)
	assert.Equal(t, "Test Song", video.Title)
	assert.Equal(t, "A test description", video.Description)
	assert.Equal(t, "https://example.com/medium.jpg", video.ThumbnailURL)
	assert.Equal(t, "PT3M33S", video.Duration)
	assert.Equal(t, "Test Channel", video.ChannelTitle)
	assert.Equal(t, "1700000000", video.ViewCount)
	assert.Equal(t, "2009-10-25T06:57:33Z", video.PublishedAt)
}

func TestConvertVideoTruncatesDescription(t *testing.T) {
	item := &youtube.Video{
		Id: "abc",
		Snippet: &youtube.VideoSnippet{
			Description: strings.Repeat("x", 1200),
		},
	}

	video := convertVideo(item)

	require.Len(t, video.Description, maxDescriptionLen)
	assert.False(t, strings.HasSuffix(video.Description, "..."), "truncation must be a hard cut")
}

func TestConvertVideoMissingFields(t *testing.T) {
	video := convertVideo(&youtube.Video{Id: "abc"})

	assert.Equal(t, "abc", video.ID)
	assert.Equal(t, "0", video.ViewCount)
	assert.Empty(t, video.ThumbnailURL)
	assert.Empty(t, video.Duration)
}

func TestTruncateCountsRunes(t *testing.T) {
	s := strings.Repeat("é", 600)

	got := truncate(s, maxDescriptionLen)

	assert.Equal(t, maxDescriptionLen, len([]rune(got)))
}

func TestMapAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "quota reason",
			err: &googleapi.Error{
				Code:    403,
				Message: "The request cannot be completed because you have exceeded your quota.",
				Errors:  []googleapi.ErrorItem{{Reason: "quotaExceeded"}},
			},
			want: ErrQuotaExceeded,
		},
		{
			name: "too many requests",
			err:  &googleapi.Error{Code: 429, Message: "slow down"},
			want: ErrQuotaExceeded,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAPIError(tc.err), tc.want)
		})
	}
}

func TestMapAPIErrorUpstream(t *testing.T) {
	err := mapAPIError(&googleapi.Error{Code: 400, Message: "invalid argument"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 400, upstream.Code)
	assert.Equal(t, "invalid argument", upstream.Message)
}

func TestMapAPIErrorPassesThroughUnknown(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	err := mapAPIError(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
}

func TestMapAPIErrorWrappedGoogleError(t *testing.T) {
	cause := fmt.Errorf("call failed: %w", &googleapi.Error{
		Code:   403,
		Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}},
	})

	assert.True(t, errors.Is(mapAPIError(cause), ErrQuotaExceeded))
}
