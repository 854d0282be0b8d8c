package warranty

import (
	"strings"
	"time"

	"github.com/gleikstore/gleikstore-api/internal/domain"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate acepta yyyy-mm-dd o ISO 8601 completo y devuelve la fecha civil a medianoche UTC.
// Con hora incluida se respeta el día del offset enviado.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civilDate(t), nil
		}
	}
	return time.Time{}, domain.ErrInvalidDate
}
