package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grailed-scraper/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresWriter is the optional database sink behind --postgres-dsn.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		posted_time TEXT,
		title TEXT NOT NULL,
		designer TEXT,
		size TEXT,
		price TEXT,
		link TEXT NOT NULL UNIQUE,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_listings_designer ON listings(designer);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// WriteBatch inserts the listings in one round trip. Rows whose link is
// already stored are left untouched.
func (w *PostgresWriter) WriteBatch(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	insertSQL := `
	INSERT INTO listings (posted_time, title, designer, size, price, link)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (link) DO NOTHING;
	`

	enqueued := 0
	for _, l := range listings {
		title := strings.TrimSpace(l.Title)
		link := strings.TrimSpace(l.ListingLink)
		if title == "" || link == "" {
			continue
		}

		batch.Queue(
			insertSQL,
			strings.TrimSpace(l.PostedTime),
			title,
			strings.TrimSpace(l.Designer),
			strings.TrimSpace(l.Size),
			strings.TrimSpace(l.Price),
			link,
		)
		enqueued++
	}

	if enqueued == 0 {
		return nil
	}

	results := w.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < enqueued; i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
