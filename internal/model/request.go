package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// yt-dlp template and container constants
const (
	OutputNameTemplate = "%(title)s.%(ext)s"
	MergeContainer     = "mp4"
)

// DownloadRequest is built fresh for every press of the download button.
type DownloadRequest struct {
	URL            string
	MaxHeight      Quality
	DestinationDir string
}

// NewDownloadRequest trims user input and assembles a request
func NewDownloadRequest(url string, quality Quality, dir string) DownloadRequest {
	return DownloadRequest{
		URL:            cleanURL(url),
		MaxHeight:      quality,
		DestinationDir: strings.TrimSpace(dir),
	}
}

// OutputTemplate returns the yt-dlp output path template inside the destination directory.
func (r DownloadRequest) OutputTemplate() string {
	return filepath.Join(r.DestinationDir, OutputNameTemplate)
}

// FormatSelector picks the best video not taller than MaxHeight plus the best
// audio, falling back to the best single file under the same cap.
func (r DownloadRequest) FormatSelector() string {
	h := int(r.MaxHeight)
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", h, h)
}

// cleanURL strips whitespace and control characters pasted along with a URL
func cleanURL(url string) string {
	url = strings.ReplaceAll(url, "\n", "")
	url = strings.ReplaceAll(url, "\r", "")
	url = strings.ReplaceAll(url, "\t", "")
	return strings.TrimSpace(url)
}
