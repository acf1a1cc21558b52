package main

import (
	"context"
	"flag"
	"log"
	"time"

	"hackmate/internal/config"
	dbpostgres "hackmate/internal/database/postgres"
	"hackmate/internal/importer"
	"hackmate/internal/repository"
)

func main() {
	pages := flag.Int("pages", 2, "listing pages to crawl")
	workers := flag.Int("workers", 4, "concurrent detail-page fetchers")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config | error=%v", err)
	}

	logger := log.Default()

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	cancelConnect()
	if err != nil {
		log.Fatalf("connect database | error=%v", err)
	}
	defer db.Close()

	repo := repository.NewPostgresHackathonRepository(db)
	imp := importer.NewDevpostImporter(db, repo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := imp.Import(ctx, *pages, *workers); err != nil {
		log.Fatalf("import | error=%v", err)
	}
	logger.Printf("import finished | pages=%d workers=%d", *pages, *workers)
}
