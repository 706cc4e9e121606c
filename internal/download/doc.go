package download

// Package download implements the background download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp). The Coordinator validates a
// request, runs a single worker and streams typed messages; the Session drains
// them onto the UI goroutine and restores the UI when a run ends.
