package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/a2sh3r/mindflex/internal/app"
	"github.com/a2sh3r/mindflex/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	cfg.ParseFlags()

	newApp, err := app.NewApp(ctx, cfg)
	if err != nil {
		panic(err)
	}

	if err := newApp.Run(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := newApp.Shutdown(shutdownCtx); err != nil {
		panic(err)
	}
}
