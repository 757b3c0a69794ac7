package tui

import (
	"time"
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncate(s string, limit int) string {
	if limit <= 1 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}

// formats a server timestamp for the sidebar. Unparseable values are
// shown as-is rather than dropped.
func formatSessionDate(raw string) string {
	if raw == "" {
		return "N/A"
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006 3:04 PM")
		}
	}

	return raw
}
