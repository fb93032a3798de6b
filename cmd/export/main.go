// Command export writes the prediction sheet to a CSV file without starting
// the service: one row per game in the current slate, with saved picks filled
// in where they exist.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/fortuna/jinx/internal/export"
	"github.com/fortuna/jinx/internal/ingest/espn"
	"github.com/fortuna/jinx/internal/service"
	"github.com/fortuna/jinx/internal/store"
	"github.com/fortuna/jinx/internal/store/localkv"
	"github.com/joho/godotenv"
)

func main() {
	var (
		out       = flag.String("out", "predictions.csv", "output file, - for stdout")
		week      = flag.Int("week", 0, "NFL week to export (0 = current)")
		storePath = flag.String("store", "jinx-store.json", "local store path")
	)
	flag.Parse()

	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Postgres is optional here too; the sheet renders from whatever picks
	// are reachable.
	var db *store.Database
	if dsn := os.Getenv("JINX_DSN"); dsn != "" {
		var err error
		db, err = store.NewDatabase(dsn)
		if err != nil {
			log.Printf("PostgreSQL unavailable, exporting from local store only: %v", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	local, err := localkv.Open(*storePath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	predictions := service.NewPredictionService(db, local, envOr("JINX_USER_ID", "default"))
	picks, err := predictions.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load predictions: %v", err)
	}

	adapter := espn.NewAdapter(espn.NewClient(), *week)
	schedule := adapter.Schedule(ctx)

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WritePredictions(w, schedule, picks); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	if *out != "-" {
		log.Printf("Wrote %d games to %s", len(schedule.Games), *out)
	}
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
