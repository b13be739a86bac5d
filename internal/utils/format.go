package utils

import (
	"fmt"
	"strings"
	"time"
)

// Number formats large numbers with commas for readability.
// For example: 1234567 becomes "1,234,567"
func Number(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result []string
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ",")
		}
		result = append(result, string(digit))
	}
	return strings.Join(result, "")
}

// Duration formats time duration in human-readable form.
// Examples:
//   - Less than 1 second: "0s"
//   - Less than 1 minute: "5.2s"
//   - Less than 1 hour: "3m5.2s"
//   - 1 hour or more: "2h15m"
func Duration(d time.Duration) string {
	if d < time.Second {
		return "0s"
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := d.Seconds() - float64(minutes*60)
		return fmt.Sprintf("%dm%.1fs", minutes, seconds)
	} else {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
}

// Bytes formats a byte count with a binary unit suffix.
// Examples: "512B", "1.5KiB", "20.0MiB"
func Bytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1fKiB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.1fGiB", float64(n)/(1024*1024*1024))
	}
}
