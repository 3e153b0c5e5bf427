// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToAge converts time to human-readable duration
func ToAge(t time.Time) string {
	if t.IsZero() {
		return UnknownValue
	}
	return HumanDuration(time.Since(t))
}

// HumanDuration converts duration to human readable format (e.g., "5d", "3h", "2m")
func HumanDuration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}

	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 365:
		return fmt.Sprintf("%dy", days/365)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// ToDate formats a date, or MissingValue when unset.
func ToDate(t time.Time) string {
	if t.IsZero() {
		return MissingValue
	}
	return t.Format(time.DateOnly)
}

// Missing returns MissingValue if string is empty
func Missing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// NA returns NAValue if string is empty
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// BoolToYesNo converts bool to Yes/No string
func BoolToYesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatPrice formats an optional amount with two decimals.
func FormatPrice(p *float64) string {
	if p == nil {
		return NAValue
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

// Truncate truncates a string to max runes
func Truncate(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}
	if max <= 3 {
		return string(rr[:max])
	}
	return string(rr[:max-3]) + "..."
}

// ShortID returns the first segment of a uuid-like id.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return Truncate(id, 8)
}
