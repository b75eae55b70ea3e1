package main

import (
	"log"
	"log/slog"

	"github.com/stretchletics/stretchletics/internal/config"
	"github.com/stretchletics/stretchletics/internal/httpapi"
	"github.com/stretchletics/stretchletics/internal/llm"
	"github.com/stretchletics/stretchletics/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	gen, err := llm.NewDefault(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	app := httpapi.NewServer(cfg, logger, gen)
	logger.Info("listening", "addr", cfg.Addr, "model", cfg.LlmModel)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
