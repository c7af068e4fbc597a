package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/studentboard/internal/server"
	"github.com/dmitrijs2005/studentboard/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		slog.Error("startup error", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
