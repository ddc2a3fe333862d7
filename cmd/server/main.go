package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wayfarer/tracker/internal/api"
	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/db"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/middleware"
	"wayfarer/tracker/internal/routes"
)

// @title Wayfarer Tracker API
// @version 1.0
// @description Personal flight log and the airport data behind its map.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Wayfarer starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	store, err := db.InitORM(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logging.Fatal("Failed to open flight store", "error", err.Error())
	}
	defer db.Close(store)

	if err := db.Migrate(store); err != nil {
		logging.Fatal("Failed to migrate flight store", "error", err.Error())
	}

	dataset, err := db.OpenReference(cfg.ReferenceDriver, cfg.ReferenceDSN, cfg.ReferenceCSV)
	if err != nil {
		logging.Fatal("Failed to open reference catalogue", "error", err.Error())
	}
	defer dataset.Close()

	cache := newCache(cfg)
	defer cache.Close()

	timezones, err := common.DefaultTimezoneFinder()
	if err != nil {
		logging.Fatal("Failed to load time zone boundaries", "error", err.Error())
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps := api.InitDependencies(api.Options{
		Store:          store,
		Reference:      dataset,
		Cache:          cache,
		SearchCacheTTL: cfg.SearchCacheTTL.Duration,
		Timezones:      timezones,
		DefaultZone:    cfg.DefaultLocation(),
		Metrics:        metricsReg,
	})

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince, routes.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SearchLimiter:  middleware.NewIPRateLimiter(cfg.SearchRatePerSec, cfg.SearchBurst),
		Debug:          cfg.AppEnv == "development",
	})

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server stopped unexpectedly", "error", err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logging.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
}

// newCache prefers Redis when configured and falls back to memory when it is
// unreachable
func newCache(cfg config.Config) common.CacheInterface {
	if cfg.UseRedis() {
		redisCache, err := common.NewRedisCacheService(context.Background(), common.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			Prefix:   "wayfarer:",
		})
		if err == nil {
			logging.Info("Using Redis search cache", "host", cfg.RedisHost)
			return redisCache
		}
		logging.Warn("Redis unavailable, using in-memory search cache", "error", err.Error())
	}
	return common.NewCacheService(cfg.SearchCacheTTL.Duration, 2*cfg.SearchCacheTTL.Duration)
}
