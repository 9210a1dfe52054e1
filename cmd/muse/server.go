package main

import (
	"context"
	"net/http"

	"muse/internal/app/playlists"
	"muse/internal/app/search"
	"muse/internal/app/status"
	"muse/internal/http/middleware"
	"muse/internal/httpapi"
	"muse/internal/logging"
	"muse/internal/store"
	"muse/internal/videoapi"
)

func newHTTPHandler(cfg Config, dataStore *store.Store, videoClient videoapi.Client) http.Handler {
	searchSvc := search.New(videoClient)
	playlistSvc := playlists.New(dataStore)
	statusSvc := status.New(dataStore)

	handler := httpapi.New(searchSvc, playlistSvc, statusSvc).Routes()
	handler = middleware.RequestLogging()(handler)
	return middleware.CORS(cfg.AllowedOrigin)(handler)
}

// newVideoClient builds the YouTube client when an API key is present.
// Without a key the search service is wired with a nil client and every
// search request fails before reaching the network.
func newVideoClient(ctx context.Context, cfg Config, logger *logging.Logger) videoapi.Client {
	if cfg.YouTubeAPIKey == "" {
		logger.Warn("YouTube API key not provided, search disabled")
		return nil
	}

	client, err := videoapi.NewYouTubeClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		logger.Error(err, "unable to create YouTube client, search disabled")
		return nil
	}

	logger.Info("YouTube client initialized")
	return client
}
