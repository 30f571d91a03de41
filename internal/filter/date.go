package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	relativeRegex = regexp.MustCompile(`(?i)\b(\d+)\s+(minute|hour|day|week|month|year)s?\s+ago\b`)
)

// NormalizePostedDate converts LinkedIn posted-date text into an ISO date.
// Handles both absolute dates ("2024-01-15") and relative forms
// ("3 days ago", "2 weeks ago"). Unrecognized input is returned unchanged.
func NormalizePostedDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}

	if isoDateRegex.MatchString(dateStr) {
		return dateStr[:10]
	}

	if match := relativeRegex.FindStringSubmatch(dateStr); match != nil {
		n, _ := strconv.Atoi(match[1])
		now := time.Now()
		var posted time.Time
		switch strings.ToLower(match[2]) {
		case "minute":
			posted = now.Add(-time.Duration(n) * time.Minute)
		case "hour":
			posted = now.Add(-time.Duration(n) * time.Hour)
		case "day":
			posted = now.AddDate(0, 0, -n)
		case "week":
			posted = now.AddDate(0, 0, -7*n)
		case "month":
			posted = now.AddDate(0, -n, 0)
		case "year":
			posted = now.AddDate(-n, 0, 0)
		}
		return posted.Format("2006-01-02")
	}

	return dateStr
}

// IsRecent reports whether a posted date falls within the given number of
// days. Unparseable or empty dates pass, matching the permissive behavior
// of the extraction layer.
func IsRecent(dateStr string, days int) bool {
	normalized := NormalizePostedDate(dateStr)
	if !isoDateRegex.MatchString(normalized) {
		return true
	}

	posted, err := time.Parse("2006-01-02", normalized[:10])
	if err != nil {
		return true
	}

	diff := time.Since(posted)
	if diff > time.Duration(days)*24*time.Hour {
		return false
	}
	//future dates beyond 2 days are treated as bogus (timezone slack)
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
