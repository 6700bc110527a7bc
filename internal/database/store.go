// Package database opens the catalog's MySQL pool and executes read
// queries against it.
package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/movie-catalog/internal/logging"
	"github.com/iliyamo/movie-catalog/internal/metrics"
	"github.com/iliyamo/movie-catalog/internal/query"
)

// Store executes catalog queries. Every call takes its own connection from
// the pool and hands it back before returning.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Query runs q and returns all of its rows. Errors from the driver are
// returned as-is.
func (s *Store) Query(ctx context.Context, q query.Query) (rows []Row, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveQuery(q.Name, time.Since(start), err)
		if err != nil {
			logging.Ctx(ctx).Error().Err(err).Str("query", q.Name).Msg("query failed")
		}
	}()

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := conn.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	cols, err := res.Columns()
	if err != nil {
		return nil, err
	}

	rows = []Row{}
	for res.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := res.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			// text protocol columns come back as raw bytes
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		rows = append(rows, NewRow(cols, vals))
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
