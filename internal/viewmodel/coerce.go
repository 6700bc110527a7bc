package viewmodel

import (
	"strings"

	"github.com/iliyamo/movie-catalog/internal/database"
)

// intField reads col from r as an integer using toInt.
func intField(r database.Row, col string) int {
	v, _ := r.Value(col)
	return toInt(v)
}

// toInt coerces a column value to an integer for display. Missing, NULL and
// non-numeric values become 0. Text is read up to the first non-digit, so
// "7" is 7, "7.9" is 7 and "8/10" is 8.
func toInt(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case []byte:
		return leadingInt(string(t))
	case string:
		return leadingInt(t)
	default:
		return 0
	}
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}
