package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hirepilot/hirepilot/internal/logging"
	"github.com/hirepilot/hirepilot/internal/server"
	"github.com/hirepilot/hirepilot/internal/server/analyze"
	"github.com/hirepilot/hirepilot/internal/server/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	generator, err := analyze.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := server.NewApp(cfg, logger, analyze.NewService(generator, logger))

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
