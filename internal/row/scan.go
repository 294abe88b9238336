// AngelaMos | 2026
// scan.go

package row

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// MapFunc builds one entity from a row.
type MapFunc[T any] func(r *Reader) (T, error)

// Collect drains rows through fn and closes them.
func Collect[T any](rows *sqlx.Rows, fn MapFunc[T]) ([]T, error) {
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []T
	for rows.Next() {
		values := make(map[string]any)
		if err := rows.MapScan(values); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		item, err := fn(New(values))
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}

// One maps a single row. It returns sql.ErrNoRows through sqlx when the
// query matched nothing.
func One[T any](r *sqlx.Row, fn MapFunc[T]) (T, error) {
	var zero T

	values := make(map[string]any)
	if err := r.MapScan(values); err != nil {
		return zero, err
	}

	return fn(New(values))
}
