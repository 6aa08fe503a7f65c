package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yt-service/domain/repository"
	"yt-service/infrastructure/cache"
	transcriptclient "yt-service/infrastructure/clients/transcript"
	youtubeclient "yt-service/infrastructure/clients/youtube"
	"yt-service/infrastructure/configuration"
	"yt-service/infrastructure/logger"
	"yt-service/infrastructure/media"
	httpHandler "yt-service/interfaces/http"
	"yt-service/server"
	"yt-service/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	searchCache := initiateSearchCache(ctx)
	defer searchCache.Close()

	var searchHandler httpHandler.ISearchHandler
	searchClient, err := initiateSearchClient(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube search client not available - search will be disabled")
	} else {
		searchUsecase := usecase.NewSearchUsecase(
			searchClient,
			searchCache,
			configuration.C.Search.DefaultLimit,
			configuration.C.Search.MaxLimit,
		)
		searchHandler = httpHandler.NewSearchHandler(searchUsecase)
	}

	transcriptClient := transcriptclient.NewClient(
		configuration.C.Transcript.MaxRetries,
		configuration.C.Transcript.Timeout,
	)
	transcriptUsecase := usecase.NewTranscriptUsecase(transcriptClient)
	transcriptHandler := httpHandler.NewTranscriptHandler(transcriptUsecase)

	converter, err := media.NewConverter(
		configuration.C.Convert.Dir,
		configuration.C.Convert.YtDlpPath,
		configuration.C.Convert.FFmpegPath,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to initialize converter")
		os.Exit(1)
	}
	convertUsecase := usecase.NewConvertUsecase(converter, configuration.C.Convert.Timeout)
	convertHandler := httpHandler.NewConvertHandler(convertUsecase)

	healthHandler := httpHandler.NewHealthHandler()

	router := server.InitiateRouter(searchHandler, transcriptHandler, convertHandler, healthHandler)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled && app.TLSCertFile != "" && app.TLSKeyFile != "" {
			if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateSearchCache returns the redis-backed store when a redis host is
// configured, otherwise the in-process LRU store. The cache holds no state
// worth flushing on shutdown.
func initiateSearchCache(ctx context.Context) repository.ISearchCache {
	cfg := configuration.C
	if cfg.Redis.Host != "" {
		addr := fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)
		store, err := cache.NewRedisStore(ctx, addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Search.CacheTTL)
		if err == nil {
			logger.GetLogger().WithField("addr", addr).Info("Using redis search cache")
			return store
		}
		logger.GetLogger().WithField("error", err).Warn("Redis not available - falling back to in-memory search cache")
	}
	return cache.NewMemoryStore(cfg.Search.CacheCapacity, cfg.Search.CacheTTL)
}

func initiateSearchClient(ctx context.Context) (repository.IVideoSearch, error) {
	cfg := configuration.C.YouTube
	if cfg.APIKey == "" && cfg.AccessToken == "" {
		return nil, errors.New("no YouTube API credentials configured")
	}
	return youtubeclient.NewSearchClient(ctx, &youtubeclient.Config{
		APIKey:       cfg.APIKey,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
	}, configuration.C.Search.BatchSize)
}
