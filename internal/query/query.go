// AngelaMos | 2026
// query.go

// Package query renders catalog listings and their counts from one shared
// description, so a page and its total always see the same rows.
package query

import (
	"strings"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// DialectFor maps a database/sql driver name onto a Dialect.
func DialectFor(driverName string) Dialect {
	if driverName == "sqlite" {
		return SQLite
	}
	return Postgres
}

// Predicate is an equality on a column. Column names come from code
// constants; values are always bound.
type Predicate struct {
	Column string
	Value  any
}

func Eq(column string, value any) Predicate {
	return Predicate{Column: column, Value: value}
}

// ActiveFilter gates on is_active unless inactive rows are requested.
func ActiveFilter(includeInactive bool) []Predicate {
	if includeInactive {
		return nil
	}
	return []Predicate{Eq("is_active", true)}
}

// VisibilityFilters gates on is_active and is_private. A gate is present
// only when its include flag is false.
func VisibilityFilters(includeInactive, includePrivate bool) []Predicate {
	preds := ActiveFilter(includeInactive)
	if !includePrivate {
		preds = append(preds, Eq("is_private", false))
	}
	return preds
}

type Order struct {
	Column string
	Desc   bool
}

func (o Order) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// OrderSet is an allow-list of sort tokens. Tokens are matched
// case-insensitively; anything else sorts by Default.
type OrderSet struct {
	Columns map[string]string
	Default string
}

func (s OrderSet) Resolve(token string, desc bool) Order {
	column, ok := s.Columns[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		column = s.Default
	}
	return Order{Column: column, Desc: desc}
}

// Spec describes a single-table read.
type Spec struct {
	Table   string
	Columns []string
	Where   []Predicate
	Order   []Order
	Limit   *int
	Offset  *int
}

// Select renders the listing statement with ? placeholders.
func (s Spec) Select(d Dialect) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.Table)

	args := s.writeWhere(&b)

	if len(s.Order) > 0 {
		parts := make([]string, len(s.Order))
		for i, o := range s.Order {
			parts[i] = o.String()
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if s.Limit != nil {
		b.WriteString(" LIMIT ?")
		args = append(args, *s.Limit)
	}

	if s.Offset != nil {
		if s.Limit == nil && d == SQLite {
			b.WriteString(" LIMIT -1")
		}
		b.WriteString(" OFFSET ?")
		args = append(args, *s.Offset)
	}

	return b.String(), args
}

// Count renders a COUNT(*) over the same predicates as Select, ignoring
// order and window.
func (s Spec) Count() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT COUNT(*) FROM ")
	b.WriteString(s.Table)

	args := s.writeWhere(&b)
	return b.String(), args
}

func (s Spec) writeWhere(b *strings.Builder) []any {
	if len(s.Where) == 0 {
		return nil
	}

	args := make([]any, 0, len(s.Where))
	b.WriteString(" WHERE ")
	for i, p := range s.Where {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(p.Column)
		b.WriteString(" = ?")
		args = append(args, p.Value)
	}

	return args
}

// Ptr returns a pointer to v, for optional Limit and Offset.
func Ptr(v int) *int {
	return &v
}
