package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"verse-storefront/internal/config"
	"verse-storefront/internal/db"
	"verse-storefront/internal/importer"
	"verse-storefront/internal/repository/featured"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to featured-products CSV (shopify_product_id, display_order, active)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, featured.NewPostgres(pool))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d featured products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
