// cmd/recount/main.go
// Maintenance tool: recomputes posts.like_count and posts.repost_count
// from the likes and reposts tables
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"Parlor/internal/config"
)

const recountQuery = `
	UPDATE posts p
	SET like_count = (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
	    repost_count = (SELECT COUNT(*) FROM reposts r WHERE r.original_post_id = p.id)
	WHERE ` + driftCondition

const driftCondition = `
	p.like_count <> (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
	OR p.repost_count <> (SELECT COUNT(*) FROM reposts r WHERE r.original_post_id = p.id)
`

func main() {
	dryRun := flag.Bool("dry-run", false, "report drift without writing")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Connecting to database...")
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	drift, err := countDrift(ctx, db)
	if err != nil {
		log.Fatalf("Failed to inspect counters: %v", err)
	}
	log.Printf("Found %d posts with stale counters", drift)

	if *dryRun || drift == 0 {
		return
	}

	fixed, err := recount(ctx, db)
	if err != nil {
		log.Fatalf("Failed to recount: %v", err)
	}
	log.Printf("✓ Recounted likes and reposts on %d posts", fixed)
}

func countDrift(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts p WHERE "+driftCondition).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count drift: %w", err)
	}
	return n, nil
}

func recount(ctx context.Context, db *sql.DB) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, recountQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to update counters: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return n, nil
}
