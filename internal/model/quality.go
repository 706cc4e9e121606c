package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality is the maximum vertical resolution requested for the video stream.
type Quality int

const (
	Quality144  Quality = 144
	Quality240  Quality = 240
	Quality360  Quality = 360
	Quality480  Quality = 480
	Quality720  Quality = 720
	Quality1080 Quality = 1080
)

// DefaultQuality is preselected in the quality dropdown.
const DefaultQuality = Quality720

// Qualities lists the selectable qualities in ascending order.
var Qualities = []Quality{Quality144, Quality240, Quality360, Quality480, Quality720, Quality1080}

// String returns the height as a decimal string ("720")
func (q Quality) String() string {
	return strconv.Itoa(int(q))
}

// Valid reports whether q is one of the selectable qualities
func (q Quality) Valid() bool {
	for _, v := range Qualities {
		if q == v {
			return true
		}
	}
	return false
}

// ParseQuality parses a dropdown value such as "720" or "720p".
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "p")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quality %q: %w", s, err)
	}
	q := Quality(n)
	if !q.Valid() {
		return 0, fmt.Errorf("unsupported quality: %d", n)
	}
	return q, nil
}

// QualityOptions returns the dropdown labels for all qualities.
func QualityOptions() []string {
	opts := make([]string, 0, len(Qualities))
	for _, q := range Qualities {
		opts = append(opts, q.String())
	}
	return opts
}
