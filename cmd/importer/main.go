package main

import (
	"context"
	"flag"
	"log"
	"os"

	"storefront-backend/internal/config"
	"storefront-backend/internal/db"
	"storefront-backend/internal/importer"
	productrepo "storefront-backend/internal/repository/product"
)

func main() {
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	path := flag.String("file", "", "path to the catalog CSV export")
	flag.Parse()
	if *path == "" {
		logger.Fatal("usage: importer -file catalog.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imp := importer.NewCSVImporter(f, repo)

	imported, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", imported, err)
	}

	logger.Printf("imported %d products", imported)
}
