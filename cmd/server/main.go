package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/adapters/api"
	"github.com/csg33k/launchboard/internal/adapters/pdf"
	"github.com/csg33k/launchboard/internal/adapters/viewstore"
	"github.com/csg33k/launchboard/internal/config"
	"github.com/csg33k/launchboard/internal/handlers"
	"github.com/csg33k/launchboard/internal/logging"
	"github.com/csg33k/launchboard/internal/ports"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	if envErr != nil {
		logger.Warn("error loading .env file", zap.Error(envErr))
	}

	client := api.New(cfg.API.URL, cfg.API.Timeout, api.WithLogger(logger.Named("api")))

	views, closeViews, err := openViews(cfg.Views)
	if err != nil {
		logger.Fatal("failed to open view store", zap.String("store", cfg.Views.Store), zap.Error(err))
	}
	defer closeViews()

	h := handlers.New(client, views, pdf.New(), logger.Named("http"))

	logger.Info("Launchboard running",
		zap.String("addr", "http://localhost:"+cfg.Port),
		zap.String("api", client.BaseURL()),
		zap.String("views", cfg.Views.Store),
	)
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func openViews(cfg config.ViewConfig) (ports.ViewStore, func(), error) {
	if cfg.Store != "redis" {
		return viewstore.NewMemory(cfg.TTL), func() {}, nil
	}
	rdb, err := viewstore.NewRedis(cfg.RedisURL, cfg.TTL)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx); err != nil {
		rdb.Close()
		return nil, nil, err
	}
	return rdb, func() { rdb.Close() }, nil
}
