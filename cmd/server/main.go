package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuberank/youtube-seo-assistant-go/internal/config"
	"github.com/tuberank/youtube-seo-assistant-go/internal/db"
	"github.com/tuberank/youtube-seo-assistant-go/internal/handler"
	"github.com/tuberank/youtube-seo-assistant-go/internal/middleware"
	"github.com/tuberank/youtube-seo-assistant-go/internal/repository"
	"github.com/tuberank/youtube-seo-assistant-go/internal/seo"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service/ai"
	"github.com/tuberank/youtube-seo-assistant-go/internal/service/youtube"
	"github.com/tuberank/youtube-seo-assistant-go/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, &db.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConnections),
		MinConns:        int32(cfg.Database.MinConnections),
		MaxConnLifetime: cfg.Database.MaxLifetime,
		MaxConnIdleTime: cfg.Database.MaxIdleTime,
	})
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close(pool)

	repo := repository.NewOptimizationRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Log.Fatal("Failed to ensure database schema", zap.Error(err))
	}
	logger.Log.Info("Database ready", zap.String("database", cfg.Database.Name))

	// YouTube client is optional: without a key the discover and
	// keyword-driven analyze flows report the missing credential.
	var ytClient *youtube.Client
	if cfg.YouTube.APIKey != "" {
		ytClient, err = youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.Region, cfg.YouTube.Timeout)
		if err != nil {
			logger.Log.Warn("Failed to initialize YouTube client, search features disabled", zap.Error(err))
			ytClient = nil
		} else {
			logger.Log.Info("YouTube client initialized", zap.String("region", cfg.YouTube.Region))
		}
	} else {
		logger.Log.Warn("YouTube API key not configured (YOUTUBE_API_KEY), search features disabled")
	}

	// Same for Gemini: generation degrades to inline warnings.
	aiClient, err := ai.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Log.Warn("AI generation disabled", zap.Error(err))
		aiClient = nil
	} else {
		logger.Log.Info("AI client initialized", zap.String("model", cfg.AI.Model))
	}

	lexicon := seo.DefaultLexicon()
	analyzer := newAnalyzer(ytClient, aiClient, lexicon, cfg)
	discovery := newDiscovery(ytClient, aiClient, cfg)

	router := buildRouter(cfg, analyzer, discovery, repo)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("Server starting", zap.Int("port", cfg.Server.Port))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("Server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("Failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("Server stopped gracefully")
	}
}

// newAnalyzer keeps a nil *youtube.Client from becoming a non-nil
// interface inside the service.
func newAnalyzer(yt *youtube.Client, gen *ai.Client, lexicon *seo.Lexicon, cfg *config.Config) *service.AnalyzerService {
	var searcher service.Searcher
	if yt != nil {
		searcher = yt
	}
	return service.NewAnalyzerService(searcher, gen, lexicon, cfg)
}

func newDiscovery(yt *youtube.Client, gen *ai.Client, cfg *config.Config) *service.DiscoveryService {
	var searcher service.Searcher
	if yt != nil {
		searcher = yt
	}
	return service.NewDiscoveryService(searcher, gen, cfg)
}

func buildRouter(
	cfg *config.Config,
	analyzer *service.AnalyzerService,
	discovery *service.DiscoveryService,
	repo repository.OptimizationRepository,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	metrics := middleware.NewMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Handler())

	healthHandler := handler.NewHealthHandler(repo)
	discoverHandler := handler.NewDiscoverHandler(discovery)
	optimizeHandler := handler.NewOptimizeHandler(analyzer, repo)
	libraryHandler := handler.NewLibraryHandler(repo, cfg.Scoring.LibraryPageSize)
	aiHandler := handler.NewAIHandler(analyzer)

	router.GET("/", healthHandler.LivenessProbe)
	router.GET("/health", healthHandler.ReadinessProbe)
	router.GET("/metrics", metrics.Exporter())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/discover", discoverHandler.HandleDiscover)
		v1.GET("/optimize", optimizeHandler.HandleAnalyze)
		v1.POST("/optimize", optimizeHandler.HandleSave)
		v1.GET("/library", libraryHandler.HandleList)
		v1.POST("/ai/generate", aiHandler.HandleGenerate)
		v1.POST("/ai/tags", aiHandler.HandleTags)
		v1.POST("/ai/hashtags", aiHandler.HandleHashtags)
	}

	return router
}
