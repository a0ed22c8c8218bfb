package warehouse

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is an interface that both *pgxpool.Pool and *pgx.Conn satisfy, so the
// store works against a pool in production and a single connection in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store provides access to the shipment star schema.
type Store struct {
	db        DB
	batchSize int
}

// NewStore creates a store. batchSize controls how many inserts are queued
// per database round trip.
func NewStore(db DB, batchSize int) *Store {
	if batchSize < 1 {
		batchSize = 1000
	}
	return &Store{db: db, batchSize: batchSize}
}

// execBatch runs sql once per argument tuple, queued in batches of
// s.batchSize within the given transaction. Returns the total number of rows
// affected, which for ON CONFLICT DO NOTHING inserts is the number of rows
// actually inserted.
func (s *Store) execBatch(ctx context.Context, tx pgx.Tx, sql string, rows [][]any) (int64, error) {
	var affected int64
	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))

		b := &pgx.Batch{}
		for _, args := range rows[start:end] {
			b.Queue(sql, args...)
		}

		br := tx.SendBatch(ctx, b)
		for range rows[start:end] {
			tag, err := br.Exec()
			if err != nil {
				br.Close()
				return affected, err
			}
			affected += tag.RowsAffected()
		}
		if err := br.Close(); err != nil {
			return affected, err
		}
	}
	return affected, nil
}
