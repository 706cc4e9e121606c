package download

import (
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/ytdl-gui/internal/model"
)

func TestEventFromUpdate_Downloading(t *testing.T) {
	now := time.Now()
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 2 * 1024 * 1024,
		TotalBytes:      8 * 1024 * 1024,
		Started:         now.Add(-2 * time.Second),
	}

	ev, ok := eventFromUpdate(update, now)

	assert.True(t, ok)
	assert.Equal(t, model.EventDownloading, ev.Kind)
	assert.Equal(t, int64(2*1024*1024), ev.DownloadedBytes)
	assert.Equal(t, int64(8*1024*1024), ev.TotalBytes)
	assert.Equal(t, "1.0 MiB/s", ev.Speed)
	assert.NotEmpty(t, ev.ETA)
}

func TestEventFromUpdate_UnknownStart(t *testing.T) {
	ev, ok := eventFromUpdate(ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 100,
	}, time.Now())

	assert.True(t, ok)
	assert.Equal(t, model.NotAvailable, ev.Speed)
	assert.Zero(t, ev.TotalBytes)
}

func TestEventFromUpdate_FinishedAndPostProcessing(t *testing.T) {
	for _, status := range []ytdlp.ProgressStatus{ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing} {
		ev, ok := eventFromUpdate(ytdlp.ProgressUpdate{Status: status}, time.Now())
		assert.True(t, ok, "status %s", status)
		assert.Equal(t, model.EventFinished, ev.Kind)
	}
}

func TestEventFromUpdate_DropsOtherStatuses(t *testing.T) {
	for _, status := range []ytdlp.ProgressStatus{ytdlp.ProgressStatusStarting, ytdlp.ProgressStatusError} {
		_, ok := eventFromUpdate(ytdlp.ProgressUpdate{Status: status}, time.Now())
		assert.False(t, ok, "status %s", status)
	}
}

func TestMergedName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/tmp/out/Video.mp4", "/tmp/out/Video.mp4"},
		{"/tmp/out/Video.f137.mp4", "/tmp/out/Video.mp4"},
		{"/tmp/out/Video.f251.webm", "/tmp/out/Video.mp4"},
		{"/tmp/out/Video.webm", "/tmp/out/Video.mp4"},
		{"/tmp/out/Intro.final.mkv", "/tmp/out/Intro.final.mp4"},
	}

	for _, test := range tests {
		if got := mergedName(test.input); got != test.expected {
			t.Errorf("mergedName(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestResolveOutputPath_FallsBackToProgressFile(t *testing.T) {
	assert.Equal(t, "/tmp/out/Video.mp4", resolveOutputPath(nil, "/tmp/out/Video.f137.mp4"))
}

func TestNewYTDLPFetcher_DefaultInterval(t *testing.T) {
	f := NewYTDLPFetcher(FetcherOptions{}, zerolog.Nop())
	assert.Equal(t, DefaultProgressInterval, f.opts.ProgressInterval)
}

func TestEnsureInstalled_SkippedWithExecutable(t *testing.T) {
	f := NewYTDLPFetcher(FetcherOptions{Executable: "/usr/local/bin/yt-dlp", AutoInstall: true}, zerolog.Nop())
	assert.NoError(t, f.ensureInstalled(t.Context()))
}
