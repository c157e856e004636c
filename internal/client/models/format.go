package models

import "fmt"

// FormatPlayTime renders minutes of play time as "3h 20m" style text.
func FormatPlayTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatDownloadSize renders a byte count as a decimal GB/MB string.
func FormatDownloadSize(bytes int64) string {
	gb := float64(bytes) / 1_000_000_000
	if gb >= 1 {
		return fmt.Sprintf("%.2f GB", gb)
	}
	mb := float64(bytes) / 1_000_000
	return fmt.Sprintf("%.2f MB", mb)
}
