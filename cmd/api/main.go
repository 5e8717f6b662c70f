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

	"macro-stress/internal/api/handlers"
	"macro-stress/internal/api/middleware"
	"macro-stress/internal/logging"
	"macro-stress/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := loadServerConfig(os.Getenv)
	logger := logging.Setup(os.Stderr, cfg.LogLevel, logging.FormatJSON)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runs, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open run store")
	}
	defer closeStore()

	metrics := middleware.NewMetrics()
	router := newRouter(cfg, runs, metrics, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting API server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
	logger.Info().Msg("server stopped")
}

// openStore picks Redis when REDIS_ADDR is set and an in-process store
// otherwise.
func openStore(ctx context.Context, cfg serverConfig) (store.RunStore, func(), error) {
	if cfg.RedisAddr != "" {
		rs, err := store.DialRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RunTTL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.RunTTL).Msg("using redis run store")
		return rs, func() { _ = rs.Close() }, nil
	}

	ms := store.NewMemoryStore(cfg.RunTTL)
	go ms.Janitor(ctx, time.Minute)
	log.Info().Dur("ttl", cfg.RunTTL).Msg("using in-memory run store")
	return ms, func() {}, nil
}

func newRouter(cfg serverConfig, runs store.RunStore, metrics *middleware.Metrics, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(metrics.Middleware())

	simulateHandler := handlers.NewSimulateHandler(runs, metrics)
	scenarioHandler := handlers.NewScenarioHandler(cfg.ScenarioDir, simulateHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/:id/table", simulateHandler.GetTable)
		api.POST("/simulate/compare", simulateHandler.CompareScenarios)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/rank", scenarioHandler.RankScenarios)
		api.GET("/scenarios/:id", scenarioHandler.GetScenario)

		api.GET("/calibration", handlers.ListCalibration)
		api.GET("/columns", handlers.ListColumns)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
