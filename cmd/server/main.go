package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/multidisease/internal/api"
	"github.com/Skufu/multidisease/internal/config"
	"github.com/Skufu/multidisease/internal/logging"
	"github.com/Skufu/multidisease/internal/predict"
	"github.com/Skufu/multidisease/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		logrus.Fatalf("logging error: %v", err)
	}

	// Models are loaded once; a missing or unreadable artifact is fatal.
	registry, err := predict.LoadRegistry(cfg.ModelDir, cfg.ModelFiles)
	if err != nil {
		logger.WithError(err).Fatal("failed to load models")
	}
	for id, info := range registry.Infos() {
		logger.WithFields(logrus.Fields{
			"disease": id,
			"model":   info.Name,
			"version": info.Version,
			"kind":    info.Kind,
			"path":    info.Path,
		}).Info("model loaded")
	}

	ctx := context.Background()
	history, err := openHistory(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("history store unavailable")
	}

	var db api.HealthChecker
	if history != nil {
		db = history
		defer history.Close()
	}

	staticRoot := detectStaticRoot()
	router := api.NewRouter(api.Deps{
		Predictor:  predict.NewService(registry, history, logger),
		DB:         db,
		Logger:     logger,
		StaticRoot: staticRoot,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server error")
		}
	}()

	logger.WithFields(logrus.Fields{"port": cfg.Port, "static": staticRoot}).Info("server listening")
	waitForShutdown(server, logger)
}

// openHistory picks the prediction history backend. PostgreSQL wins when
// enabled; otherwise SQLite is used if a path is configured. It returns a nil
// store when history is off.
func openHistory(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch {
	case cfg.EnableDB:
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case cfg.HistorySQLitePath != "":
		lite, err := store.NewSQLiteStore(cfg.HistorySQLitePath)
		if err != nil {
			return nil, err
		}
		return lite, nil
	default:
		return nil, nil
	}
}

func waitForShutdown(server *http.Server, logger *logrus.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

func detectStaticRoot() string {
	startDir, err := os.Getwd()
	if err != nil {
		return "web"
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		web := filepath.Join(dir, "web")
		if fileExists(filepath.Join(web, "index.html")) {
			return web
		}
	}

	return filepath.Join(startDir, "web")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
