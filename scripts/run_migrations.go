package main

import (
	"context"
	"log"
	"os"

	"github.com/safar/loja/internal/config"
	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/migrations"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/run_migrations.go [up|down]")
	}

	direction := os.Args[1]
	if direction != "up" && direction != "down" {
		log.Fatal("Direction must be 'up' or 'down'")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	n, err := database.Migrate(ctx, db, migrations.FS, direction)
	if err != nil {
		log.Fatalf("Run migrations: %v", err)
	}

	log.Printf("Successfully ran %d migration(s) %s", n, direction)
}
