package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC3339")

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// ParseDate accepts a calendar date or an RFC3339 timestamp and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
