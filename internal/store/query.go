package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builder over *sql.DB.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// insertEvent stamps a sequence number and timestamp and inserts the row.
func (r *eventRepo) insertEvent(ctx context.Context, table string, cols []string, vals []any) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	query, args := builder().
		Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, cols...)...).
		Values(append([]any{seq, time.Now().UTC()}, vals...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// selectEvents builds a newest-first selector over table honoring opts.
func selectEvents(table string, opts QueryOpts, cols ...string) *entsql.Selector {
	b := builder()
	sel := b.Select(append([]string{"id", "sequence", "timestamp"}, cols...)...).
		From(b.Table(table))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

// countBy groups table by col and returns counts, most frequent first.
func (r *eventRepo) countBy(ctx context.Context, table, col string, fn func(key string, n int)) error {
	b := builder()
	query, args := b.Select(col, entsql.As(entsql.Count("*"), "n")).
		From(b.Table(table)).
		GroupBy(col).
		OrderBy(entsql.Desc("n"), col).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("count %s by %s: %w", table, col, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return fmt.Errorf("scan %s count: %w", table, err)
		}
		fn(key, n)
	}
	return rows.Err()
}
