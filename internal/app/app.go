package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/brainstorm/internal/availability"
	"github.com/MrSnakeDoc/brainstorm/internal/config"
	"github.com/MrSnakeDoc/brainstorm/internal/dictionary"
	"github.com/MrSnakeDoc/brainstorm/internal/favorites"
	"github.com/MrSnakeDoc/brainstorm/internal/generator"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
	"github.com/MrSnakeDoc/brainstorm/internal/redis"
	"github.com/MrSnakeDoc/brainstorm/internal/scheduler"
	"github.com/MrSnakeDoc/brainstorm/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/brainstorm/internal/store/redis"
	"github.com/MrSnakeDoc/brainstorm/internal/utils"
	"github.com/MrSnakeDoc/brainstorm/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.DictionaryReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Favorites: Redis when configured (fail fast if unreachable), memory otherwise
	var (
		redisClient *goredis.Client
		favStore    favorites.Store
	)
	if cfg.RedisEnabled() {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		favStore = redisstore.NewStore(client)
	} else {
		loggerClient.Info("redis not configured, favorites are kept in memory")
		favStore = memory.NewFavoritesStore()
	}

	// Dictionary snapshot, filled by the reloader on Run
	holder := dictionary.NewHolder(nil)
	reloadTrigger := make(chan struct{}, 1)
	reloader := scheduler.NewDictionaryReloader(
		cfg.WordlistFile,
		holder,
		loggerClient,
		cfg.DictionaryReloadInterval,
		reloadTrigger,
	)

	gen := generator.New(holder, loggerClient.Named("generator"),
		generator.WithMaxPageSize(cfg.MaxPageSize))

	providers := []availability.Provider{
		availability.NewMockProvider(cfg.MockLatency),
		availability.NewDNSProvider(cfg.DNSResolver, cfg.DNSTimeout),
	}
	checker := availability.NewChecker(loggerClient.Named("availability"), providers,
		availability.WithDefault(cfg.AvailabilityProvider),
		availability.WithMaxDomains(cfg.AvailabilityMaxDomains))

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultPageSize: cfg.DefaultPageSize,
		Generator:       gen,
		Dictionary:      holder,
		Availability:    checker,
		Favorites:       favorites.NewService(favStore, loggerClient.Named("favorites")),
		RedisClient:     redisClient,
		ReloadTrigger:   reloadTrigger,
		ReloadStatus:    reloader.Status,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Brainstorm v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Brainstorm %s", version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the dictionary before serving; generation needs it
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start dictionary reloader: %w", err)
	}
	a.logger.Info("dictionary reloader started",
		logger.Duration("interval", a.cfg.DictionaryReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.reloader.Stop()
		return err
	}

	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}

	a.logger.Info("✅ Brainstorm stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
