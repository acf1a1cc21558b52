package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackmate/internal/app"
	"hackmate/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config | error=%v", err)
	}

	application, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("bootstrap | error=%v", err)
	}

	addr := app.ListenAddr(cfg.App.HTTPPort)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening | addr=%s env=%s", addr, cfg.App.Environment)
		errCh <- application.Fiber.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("server stopped | error=%v", err)
		}
	case sig := <-quit:
		log.Printf("shutting down | signal=%s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown | error=%v", err)
		}
	}

	if err := cleanup(); err != nil {
		log.Printf("cleanup | error=%v", err)
	}
}
