package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"taskboard/internal/cli"
	"taskboard/internal/config"
	"taskboard/internal/state"
	"taskboard/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer st.Close()

	container := state.New(st)

	root := cli.NewRootCmd(container, cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
