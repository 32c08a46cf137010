package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/clipboard"
	"github.com/pindrop/pindrop/internal/config"
	"github.com/pindrop/pindrop/internal/httpserver"
	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/index"
	"github.com/pindrop/pindrop/internal/ingest"
	"github.com/pindrop/pindrop/internal/intent"
	"github.com/pindrop/pindrop/internal/logger"
	"github.com/pindrop/pindrop/internal/redis"
	"github.com/pindrop/pindrop/internal/scheduler"
	redisstore "github.com/pindrop/pindrop/internal/store/redis"
	"github.com/pindrop/pindrop/internal/tables"
	"github.com/pindrop/pindrop/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	reloader    *scheduler.TablesReloader
	gc          *scheduler.GarbageCollector
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
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
	loggerClient.Info("Redis initialized successfully")

	// Initialize memory index
	memIndex := index.NewMemoryIndex()

	// Initialize Redis store
	store := redisstore.NewStore(redisClient)

	// Try to sync shortcuts from Redis to memory on startup
	syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync shortcuts from redis on startup",
			logger.Error(err))
	}

	// Routing tables: built-ins by default, merged with the file when
	// configured.
	provider := tables.NewProvider()

	var reloader *scheduler.TablesReloader
	var reloadTrigger chan struct{}
	if cfg.TablesFile != "" {
		loggerClient.Info("tables file configured, initializing reloader",
			logger.String("file", cfg.TablesFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewTablesReloader(
			cfg.TablesFile,
			provider,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("no tables file configured, using built-in tables")
	}

	// Initialize garbage collector
	gc := scheduler.NewGarbageCollector(
		store,
		memIndex,
		loggerClient,
		cfg.GCInterval,
		cfg.GCThreshold,
	)

	// Native gateway client and the pipeline components driven by it
	gateway := bridge.NewGateway(bridge.GatewayOptions{
		BaseURL: cfg.GatewayURL,
		Timeout: cfg.GatewayTimeout,
	}, loggerClient)

	ingestor := ingest.New(gateway, cfg.InlineMaxBytes, loggerClient)
	detector := clipboard.NewDetector(gateway, store, cfg.ClipboardCooldown, loggerClient)
	builder := intent.NewBuilder(intent.Policy{
		VideoMaxBytes:  cfg.VideoMaxBytes,
		InlineMaxBytes: cfg.InlineMaxBytes,
	}, loggerClient)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		RedisClient:   redisClient,
		MemoryIndex:   memIndex,
		Tables:        provider,
		Bridge:        gateway,
		Ingestor:      ingestor,
		Clipboard:     detector,
		IntentBuilder: builder,
		TablesFile:    cfg.TablesFile,
		ReloadTrigger: reloadTrigger,
		InlineMax:     cfg.InlineMaxBytes,
		GatewayPing:   gateway.Ping,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		reloader:    reloader,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Pindrop v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Pindrop %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start tables reloader (if a file is configured)
	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start tables reloader: %w", err)
		}
		a.logger.Info("tables reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	// Start garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start garbage collector: %w", err)
	}
	a.logger.Info("garbage collector started",
		logger.Duration("interval", a.cfg.GCInterval))

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
		return err
	}

	// Stop tables reloader
	if a.reloader != nil {
		a.reloader.Stop()
	}

	// Stop garbage collector
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Flush the index back to Redis so counters whose best-effort writes
	// failed while running are not lost across restarts.
	if records := a.memIndex.GetAllShortcuts(); len(records) > 0 {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		if err := redisstore.NewStore(a.redisClient).SaveShortcutsMany(flushCtx, records); err != nil {
			a.logger.Warn("failed to flush shortcut records on shutdown",
				logger.Error(err))
		}
		flushCancel()
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Pindrop stopped cleanly")
	return nil
}
