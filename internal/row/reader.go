// AngelaMos | 2026
// reader.go

// Package row converts untyped result rows into entity fields. Both
// database drivers hand back different Go types for the same column
// (pgx reports BOOLEAN as bool, sqlite as int64), so every accessor
// accepts each representation a supported driver can produce.
package row

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrColumnType    = errors.New("unexpected column type")
)

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Reader reads typed values out of one row. The first failure is sticky:
// later calls return zero values and Err reports the original problem.
type Reader struct {
	values map[string]any
	err    error
}

func New(values map[string]any) *Reader {
	return &Reader{values: values}
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) value(column string) (any, bool) {
	if r.err != nil {
		return nil, false
	}

	v, ok := r.values[column]
	if !ok {
		r.err = fmt.Errorf("%w: %s", ErrMissingColumn, column)
		return nil, false
	}

	return v, true
}

func (r *Reader) fail(column string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s is %T", ErrColumnType, column, v)
	}
}

func (r *Reader) Int64(column string) int64 {
	v, ok := r.value(column)
	if !ok {
		return 0
	}

	n, ok := toInt64(v)
	if !ok {
		r.fail(column, v)
	}
	return n
}

func (r *Reader) Int(column string) int {
	return int(r.Int64(column))
}

func (r *Reader) NullInt(column string) *int {
	v, ok := r.value(column)
	if !ok || v == nil {
		return nil
	}

	n, ok := toInt64(v)
	if !ok {
		r.fail(column, v)
		return nil
	}

	i := int(n)
	return &i
}

// String returns "" for NULL.
func (r *Reader) String(column string) string {
	s := r.NullString(column)
	if s == nil {
		return ""
	}
	return *s
}

func (r *Reader) NullString(column string) *string {
	v, ok := r.value(column)
	if !ok || v == nil {
		return nil
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		r.fail(column, v)
		return nil
	}

	return &s
}

func (r *Reader) Bool(column string) bool {
	v, ok := r.value(column)
	if !ok {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case int64:
		return t != 0
	case string, []byte:
		b, err := strconv.ParseBool(asString(t))
		if err == nil {
			return b
		}
	}

	r.fail(column, v)
	return false
}

func (r *Reader) Time(column string) time.Time {
	t := r.NullTime(column)
	if t == nil {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %s is NULL", ErrColumnType, column)
		}
		return time.Time{}
	}
	return *t
}

func (r *Reader) NullTime(column string) *time.Time {
	v, ok := r.value(column)
	if !ok || v == nil {
		return nil
	}

	switch t := v.(type) {
	case time.Time:
		return &t
	case string, []byte:
		if parsed, ok := parseTime(asString(t)); ok {
			return &parsed
		}
	}

	r.fail(column, v)
	return nil
}

func (r *Reader) Decimal(column string) decimal.NullDecimal {
	v, ok := r.value(column)
	if !ok || v == nil {
		return decimal.NullDecimal{}
	}

	var (
		d   decimal.Decimal
		err error
	)

	switch t := v.(type) {
	case string, []byte:
		d, err = decimal.NewFromString(asString(t))
	case float64:
		d = decimal.NewFromFloat(t)
	case int64:
		d = decimal.NewFromInt(t)
	default:
		r.fail(column, v)
		return decimal.NullDecimal{}
	}

	if err != nil {
		r.fail(column, v)
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Labels decodes a JSON array of strings. NULL and empty text yield nil.
func (r *Reader) Labels(column string) []string {
	v, ok := r.value(column)
	if !ok || v == nil {
		return nil
	}

	var raw string
	switch t := v.(type) {
	case string, []byte:
		raw = strings.TrimSpace(asString(t))
	default:
		r.fail(column, v)
		return nil
	}

	if raw == "" || raw == "null" {
		return nil
	}

	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		r.fail(column, v)
		return nil
	}

	return labels
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int32:
		return int64(t), true
	case int:
		return int64(t), true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
	case string, []byte:
		n, err := strconv.ParseInt(asString(t), 10, 64)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func asString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	s, _ := v.(string)
	return s
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
