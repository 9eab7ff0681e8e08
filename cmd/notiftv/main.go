// The notiftv command runs the TV display daemon. It polls the
// notifmanager server for the content its TV should show, keeps the
// rotation state machine ticking, and serves frame descriptions to the
// local renderer over a loopback listener.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/cache"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/poller"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/resolver"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/screen"
	"github.com/HyperDarkmoon/notifmanager-sub000/pkg/client"
)

func main() {
	server := flag.String("server", "http://localhost:8090", "notifmanager server URL")
	tvName := flag.String("tv", "", "TV registry name (required)")
	listen := flag.String("listen", "127.0.0.1:8091", "local frame endpoint address")
	cachePath := flag.String("cache", defaultCachePath(), "legacy content cache file")
	pollInterval := flag.Duration("poll-interval", resolver.PollInterval, "content poll interval")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("tv", *tvName).Logger()
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if *tvName == "" {
		logger.Fatal().Msg("missing required -tv flag")
	}

	if err := run(*server, *tvName, *listen, *cachePath, *pollInterval, logger); err != nil {
		logger.Fatal().Err(err).Msg("display daemon exited")
	}
}

func run(server, tvName, listen, cachePath string, pollInterval time.Duration, logger zerolog.Logger) error {
	api, err := client.NewClient(server)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing or inactive registration is logged, not fatal: the
	// daemon keeps polling and comes alive the moment an admin
	// registers the TV.
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	status, err := api.CheckTV(checkCtx, tvName)
	cancel()
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("tv registration check failed")
	case !status.Active:
		logger.Warn().Msg("tv is registered but inactive")
	default:
		logger.Info().Msg("tv registration confirmed")
	}

	res := resolver.New(api, cache.NewStore(cachePath), logger)
	p := poller.New(api.DeviceData, logger)
	controller := screen.New(tvName, res, p, logger)
	controller.SetPollInterval(pollInterval)

	httpServer := &http.Server{
		Addr:         listen,
		Handler:      controller.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", listen).Msg("frame endpoint listening")
		errCh <- httpServer.ListenAndServe()
	}()

	go controller.Run(ctx)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "notiftv-cache.json"
	}
	return filepath.Join(dir, "notiftv", "content.json")
}
