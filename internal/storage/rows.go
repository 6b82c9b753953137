package storage

import "time"

// Coercion helpers for Row values. The store hands back driver-native types
// (int32 for integer columns, []any for text arrays); services want Go
// domain types and a zero value for absent columns.

func Str(r Row, col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

func Int(r Row, col string) int {
	switch v := r[col].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func Time(r Row, col string) time.Time {
	if v, ok := r[col].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func Strs(r Row, col string) []string {
	switch v := r[col].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
