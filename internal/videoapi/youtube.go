package videoapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxDescriptionLen is the hard cut applied to video descriptions at
// ingestion time. No truncation indicator is appended.
const maxDescriptionLen = 500

// YouTubeClient implements the Client interface for the YouTube Data API v3.
type YouTubeClient struct {
	svc *youtube.Service
}

// NewYouTubeClient creates a YouTube Data API client authenticated with
// the given API key.
func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

// Search runs a relevance-ordered video search followed by a single
// batched detail lookup for snippet, statistics and duration fields.
// A search that matches nothing returns an empty slice, not an error.
func (c *YouTubeClient) Search(ctx context.Context, query string, maxResults int64) ([]Video, error) {
	searchResp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return []Video{}, nil
	}

	detailResp, err := c.svc.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	videos := make([]Video, 0, len(detailResp.Items))
	for _, item := range detailResp.Items {
		videos = append(videos, convertVideo(item))
	}

	return videos, nil
}

func convertVideo(item *youtube.Video) Video {
	video := Video{
		ID:        item.Id,
		ViewCount: "0",
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = truncate(item.Snippet.Description, maxDescriptionLen)
		video.ChannelTitle = item.Snippet.ChannelTitle
		video.PublishedAt = item.Snippet.PublishedAt
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
		}
	}
	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		video.ViewCount = strconv.FormatUint(item.Statistics.ViewCount, 10)
	}

	return video
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// mapAPIError translates provider failures into the package error
// taxonomy: quota exhaustion, other provider rejections, and everything
// else (network, parsing) as a plain wrapped error.
func mapAPIError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("youtube api: %w", err)
	}

	if gerr.Code == http.StatusTooManyRequests {
		return ErrQuotaExceeded
	}
	for _, item := range gerr.Errors {
		if item.Reason == "quotaExceeded" || item.Reason == "dailyLimitExceeded" {
			return ErrQuotaExceeded
		}
	}

	return &UpstreamError{Code: gerr.Code, Message: gerr.Message}
}
