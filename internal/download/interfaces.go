package download

import (
	"context"

	"github.com/ytget/ytdl-gui/internal/model"
)

// Job is a validated request handed to a Fetcher.
type Job struct {
	ID        string
	Request   model.DownloadRequest
	MergeTool string // absolute path of the merge tool found during validation
}

// ProgressFunc receives progress events on the worker goroutine.
type ProgressFunc func(model.ProgressEvent)

// Fetcher performs the blocking download and merge of a single job and
// returns the path of the produced file when known.
type Fetcher interface {
	Fetch(ctx context.Context, job Job, onProgress ProgressFunc) (string, error)
}

// Starter defines the interface of the download coordinator as seen by the UI.
type Starter interface {
	// Start validates the request and spawns the worker. It never blocks on
	// the download itself.
	Start(req model.DownloadRequest) (string, error)

	// Updates returns the channel the worker publishes messages on.
	Updates() <-chan model.Message

	// Busy reports whether a worker is running.
	Busy() bool
}

// Presenter renders the download state. All methods are called on the UI goroutine.
type Presenter interface {
	Render(state model.DownloadState)
	Notify(state model.DownloadState)
	Restore()
}

// Dispatcher runs fn on the UI goroutine and returns once it has run.
type Dispatcher func(fn func())
