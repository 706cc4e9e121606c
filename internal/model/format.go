package model

import (
	"fmt"
	"time"
)

// NotAvailable is shown for progress fields yt-dlp has not reported yet
const NotAvailable = "N/A"

// Byte size formatting constants
const (
	ByteUnit  = 1024
	ByteUnits = "KMGTPE"
)

// FormatBytes formats a size in bytes to a human readable string ("1.5 MiB")
func FormatBytes(bytes int64) string {
	if bytes < ByteUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(ByteUnit), 0
	for n := bytes / ByteUnit; n >= ByteUnit; n /= ByteUnit {
		div *= ByteUnit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), ByteUnits[exp])
}

// FormatSpeed formats a transfer rate, or N/A when unknown
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond <= 0 {
		return NotAvailable
	}
	return FormatBytes(int64(bytesPerSecond)) + "/s"
}

// FormatETA returns ETA formatted as hh:mm:ss or mm:ss, or N/A if unknown
func FormatETA(eta time.Duration) string {
	sec := int(eta.Round(time.Second).Seconds())
	if sec <= 0 {
		return NotAvailable
	}

	hours := sec / 3600
	minutes := (sec % 3600) / 60
	seconds := sec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatPercent returns the completion percentage with one decimal, or N/A
// when the total size is unknown.
func FormatPercent(downloaded, total int64) string {
	if total <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", Percent(downloaded, total))
}

// Percent returns downloaded/total*100 clamped to [0,100]. Unknown totals yield 0.
func Percent(downloaded, total int64) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(downloaded) / float64(total) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
