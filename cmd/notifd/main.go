// The notifd command implements the notifmanager server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/auth"
	authhttp "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/auth/http"
	authpg "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/auth/postgres"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/config"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/database"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/devicedata"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/migrations"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/profile"
	profilehttp "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/profile/http"
	profilepg "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/profile/postgres"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/ratelimit"
	ratelimitredis "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/ratelimit/redis"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/schedule"
	schedulehttp "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/schedule/http"
	schedulepg "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/schedule/postgres"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/tv"
	tvhttp "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/tv/http"
	tvpg "github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/tv/postgres"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/upload"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if *debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if err := run(*configPath, logger); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run(configPath string, logger zerolog.Logger) error {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.NewManager(db).ApplyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Services
	authService := auth.NewService(authpg.NewRepository(db), logger)
	tvService := tv.NewService(tvpg.NewRepository(db), logger)
	scheduleService := schedule.NewService(schedulepg.NewRepository(db), logger)
	profileService := profile.NewService(profilepg.NewRepository(db), logger)

	limiter := ratelimit.NewService(ratelimitredis.NewStore(redisClient), logger)
	limiter.RegisterDefaultLimits()

	deviceCache := devicedata.NewCache(redisClient)
	deviceHub := devicedata.NewHub(logger)
	sampler := devicedata.NewSampler(logger, func(sample types.DeviceData) {
		deviceHub.Broadcast(sample)
		storeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := deviceCache.Store(storeCtx, sample); err != nil {
			logger.Warn().Err(err).Msg("failed to cache device data")
		}
	})
	go sampler.Run(ctx, devicedata.DefaultInterval)

	uploadHandler := upload.NewHandler(cfg.Content, logger)
	if err := uploadHandler.EnsureStorageDir(); err != nil {
		return fmt.Errorf("failed to create content storage: %w", err)
	}

	router := buildRouter(cfg, logger, routerDeps{
		auth:       authhttp.NewHandler(authService, logger),
		authGuard:  authhttp.Middleware(authService, logger),
		tvs:        tvhttp.NewHandler(tvService, logger),
		schedules:  schedulehttp.NewHandler(scheduleService, logger),
		profiles:   profilehttp.NewHandler(profileService, logger),
		devicedata: devicedata.NewHandler(sampler, deviceCache, deviceHub, logger),
		upload:     uploadHandler,
		limiter:    limiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if cfg.Server.TLSCert != "" {
			errCh <- server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}

type routerDeps struct {
	auth       *authhttp.Handler
	authGuard  func(http.Handler) http.Handler
	tvs        *tvhttp.Handler
	schedules  *schedulehttp.Handler
	profiles   *profilehttp.Handler
	devicedata *devicedata.Handler
	upload     *upload.Handler
	limiter    ratelimit.Service
}

func buildRouter(cfg *config.Config, logger zerolog.Logger, deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Error().Err(err).Msg("failed to write health response")
		}
	})

	displayLimiter := ratelimit.Middleware(deps.limiter, "display_poll", logger)

	r.Route("/api", func(r chi.Router) {
		// Account endpoints, throttled against credential guessing.
		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(deps.limiter, "auth_attempt", logger))
			r.Route("/auth", deps.auth.RegisterRoutes)
		})

		r.Route("/content", func(r chi.Router) {
			// Display-facing reads: unauthenticated but throttled.
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(10 * time.Second))
				r.Use(displayLimiter)
				deps.schedules.RegisterDisplayRoutes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(30 * time.Second))
				r.Use(deps.authGuard)
				deps.schedules.RegisterAdminRoutes(r)
				deps.upload.RegisterRoutes(r)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(10 * time.Second))
				r.Use(displayLimiter)
				deps.profiles.RegisterDisplayRoutes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(30 * time.Second))
				r.Use(deps.authGuard)
				deps.profiles.RegisterAdminRoutes(r)
			})
		})

		r.Route("/tvs", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(10 * time.Second))
				r.Use(displayLimiter)
				deps.tvs.RegisterDisplayRoutes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(30 * time.Second))
				r.Use(deps.authGuard)
				deps.tvs.RegisterAdminRoutes(r)
			})
		})

		r.Route("/device-data", func(r chi.Router) {
			r.With(displayLimiter).Get("/", deps.devicedata.ServeLatest)
			// Dashboard telemetry stream.
			r.With(ratelimit.Middleware(deps.limiter, "ws_connect", logger)).
				Get("/ws", deps.devicedata.ServeWS)
		})
	})

	// Uploaded media, fetched by displays.
	r.Handle(cfg.Content.BaseURL+"/*", deps.upload.FileServer())

	return r
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("requestId", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
