package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatTimeRange formats a start/end pair as "15:04 - 16:30" in the start's location.
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("15:04"), end.In(start.Location()).Format("15:04"))
}

// SanitizeFilename lowercases the title and collapses anything outside
// [a-z0-9] into single underscores, suitable for a download filename.
func SanitizeFilename(title string) string {
	var b strings.Builder
	lastUnderscore := true // suppress a leading underscore
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	name := strings.TrimSuffix(b.String(), "_")
	if name == "" {
		return "event"
	}

	return name
}
