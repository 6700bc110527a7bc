package database

import (
	"fmt"
	"strconv"
)

// Row is one result row: an ordered mapping from column name to value.
// Text values arrive as string, NULL as nil, anything else as the driver
// delivered it.
type Row struct {
	columns []string
	values  []any
}

// NewRow pairs columns with values. Both slices must have the same length.
func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

// Columns returns the column names in select order.
func (r Row) Columns() []string { return r.columns }

// Value returns the value of the first column named col.
func (r Row) Value(col string) (any, bool) {
	for i, c := range r.columns {
		if c == col {
			return r.values[i], true
		}
	}
	return nil, false
}

// Text returns the value of col rendered as text; "" when absent or NULL.
func (r Row) Text(col string) string {
	v, ok := r.Value(col)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
