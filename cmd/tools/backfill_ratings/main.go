// Command backfill_ratings recomputes the derived overall rating for every
// stored user record. Run it after a rating-formula change so records written
// under the old formula agree with the current one.
//
// Usage:
//
//	go run cmd/tools/backfill_ratings/main.go
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/WillyEverGreen/gigbridge/internal/ledger"
	"github.com/WillyEverGreen/gigbridge/internal/store"
)

// workers bounds concurrent record rewrites so the pool isn't exhausted.
const workers = 8

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := store.ConnectPostgres(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ids, err := db.UserIDs(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to list user records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Rating Backfill ===")
	fmt.Printf("Found %d user records\n", len(ids))

	svc := ledger.NewService(db)

	var updated atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, id := range ids {
		g.Go(func() error {
			changed, err := svc.RecomputeOverallRating(gctx, id)
			if err != nil {
				return fmt.Errorf("user %s: %w", id, err)
			}
			if changed {
				updated.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Backfill failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. %d of %d records updated.\n", updated.Load(), len(ids))
}
