package download

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/ytget/ytdl-gui/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 250 * time.Millisecond

// FetcherOptions configures the yt-dlp fetcher.
type FetcherOptions struct {
	Executable       string        // yt-dlp binary; empty means resolve or install
	AutoInstall      bool          // download yt-dlp on first use when missing
	ProgressInterval time.Duration // progress sampling frequency
}

// YTDLPFetcher downloads through the yt-dlp executable.
type YTDLPFetcher struct {
	opts FetcherOptions
	log  zerolog.Logger

	installOnce sync.Once
	installErr  error
}

// NewYTDLPFetcher creates a new yt-dlp backed fetcher
func NewYTDLPFetcher(opts FetcherOptions, logger zerolog.Logger) *YTDLPFetcher {
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	return &YTDLPFetcher{
		opts: opts,
		log:  logger.With().Str("component", "ytdlp").Logger(),
	}
}

// Fetch runs yt-dlp for the job and blocks until the merged file is written
// or the tool fails.
func (f *YTDLPFetcher) Fetch(ctx context.Context, job Job, onProgress ProgressFunc) (string, error) {
	if err := f.ensureInstalled(ctx); err != nil {
		return "", err
	}

	dl := f.command(job)

	// ProgressFunc callbacks arrive sequentially from the yt-dlp output reader
	var lastFile string
	dl.ProgressFunc(f.opts.ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if update.Filename != "" {
			lastFile = update.Filename
		}
		if ev, ok := eventFromUpdate(update, time.Now()); ok && onProgress != nil {
			onProgress(ev)
		}
	})

	f.log.Debug().
		Str("job", job.ID).
		Str("url", job.Request.URL).
		Str("format", job.Request.FormatSelector()).
		Str("output", job.Request.OutputTemplate()).
		Msg("Running yt-dlp")

	result, err := dl.Run(ctx, job.Request.URL)
	if err != nil {
		return "", err
	}

	return resolveOutputPath(result, lastFile), nil
}

// command builds the yt-dlp invocation for a job
func (f *YTDLPFetcher) command(job Job) *ytdlp.Command {
	dl := ytdlp.New().
		NoPlaylist().
		Output(job.Request.OutputTemplate()).
		Format(job.Request.FormatSelector()).
		MergeOutputFormat(model.MergeContainer)

	if job.MergeTool != "" {
		dl.FFmpegLocation(job.MergeTool)
	}
	if f.opts.Executable != "" {
		dl.SetExecutable(f.opts.Executable)
	}
	return dl
}

// ensureInstalled resolves the yt-dlp binary once, downloading it when allowed
func (f *YTDLPFetcher) ensureInstalled(ctx context.Context) error {
	if f.opts.Executable != "" || !f.opts.AutoInstall {
		return nil
	}
	f.installOnce.Do(func() {
		resolved, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{})
		if err != nil {
			f.installErr = fmt.Errorf("failed to install yt-dlp: %w", err)
			return
		}
		f.log.Info().Str("path", resolved.Executable).Str("version", resolved.Version).Msg("yt-dlp ready")
	})
	return f.installErr
}

// eventFromUpdate converts a yt-dlp progress update into a progress event.
// Statuses other than downloading and finished/post-processing are dropped.
func eventFromUpdate(update ytdlp.ProgressUpdate, now time.Time) (model.ProgressEvent, bool) {
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		return model.ProgressEvent{
			Kind:            model.EventDownloading,
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
			Speed:           model.FormatSpeed(transferRate(update, now)),
			ETA:             model.FormatETA(update.ETA()),
		}, true
	case ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing:
		return model.ProgressEvent{
			Kind:            model.EventFinished,
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
		}, true
	}
	return model.ProgressEvent{}, false
}

// transferRate returns the average bytes per second since the file started
func transferRate(update ytdlp.ProgressUpdate, now time.Time) float64 {
	if update.Started.IsZero() {
		return 0
	}
	elapsed := now.Sub(update.Started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(update.DownloadedBytes) / elapsed
}

// resolveOutputPath picks the merged file path from the yt-dlp result, falling
// back to the last file seen in progress updates.
func resolveOutputPath(result *ytdlp.Result, lastFile string) string {
	name := lastFile
	if result != nil {
		if info, err := result.GetExtractedInfo(); err == nil && len(info) > 0 && info[0].Filename != nil {
			name = *info[0].Filename
		}
	}
	return mergedName(name)
}

// formatSuffix matches the per-format infix yt-dlp adds before merging (title.f137.mp4)
var formatSuffix = regexp.MustCompile(`\.f\d+$`)

// mergedName rewrites a per-stream filename to the merged container name
func mergedName(name string) string {
	if name == "" {
		return ""
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = formatSuffix.ReplaceAllString(base, "")
	return base + "." + model.MergeContainer
}
