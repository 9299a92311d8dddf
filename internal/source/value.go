package source

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/encoding/charmap"
)

// FormatValue renders a record value as plain text. nil renders empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatSQLValue formats a value scanned from PostgreSQL for display
func formatSQLValue(v any) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case []byte:
		if len(val) == 0 {
			return ""
		}
		// Check if it's printable text
		for _, b := range val {
			if b < 32 && b != '\n' && b != '\r' && b != '\t' {
				return fmt.Sprintf("[%d bytes]", len(val))
			}
		}
		return escapeControl(repairText(string(val)))
	case string:
		return escapeControl(repairText(val))
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case int64, float32, float64, bool, time.Time:
		return val
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	default:
		return fmt.Sprintf("%v", v)
	}
}

// repairText turns text from a non-UTF-8 database (SQL_ASCII or LATIN1
// client encodings) into UTF-8. Windows-1252 is tried first since it is a
// superset of Latin-1 for printable text; bytes it leaves undefined fall
// back to Latin-1, which maps every byte.
func repairText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	if decoded, err := charmap.Windows1252.NewDecoder().String(s); err == nil && !strings.ContainsRune(decoded, utf8.RuneError) {
		return decoded
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().String(s)
	return decoded
}

func escapeControl(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
