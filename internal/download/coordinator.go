package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/ytget/ytdl-gui/internal/apperrors"
	"github.com/ytget/ytdl-gui/internal/model"
	"github.com/ytget/ytdl-gui/internal/platform"
)

// Coordinator constants
const (
	UpdateBufferSize = 64
	RunIDPrefix      = "run-"
)

// Coordinator validates download requests and runs at most one worker at a time.
type Coordinator struct {
	fetcher Fetcher
	locator platform.ToolLocator
	fs      afero.Fs
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
	updates chan model.Message
}

// NewCoordinator creates a new download coordinator
func NewCoordinator(fetcher Fetcher, locator platform.ToolLocator, fs afero.Fs, logger zerolog.Logger) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		fetcher: fetcher,
		locator: locator,
		fs:      fs,
		log:     logger.With().Str("component", "coordinator").Logger(),
		ctx:     ctx,
		cancel:  cancel,
		updates: make(chan model.Message, UpdateBufferSize),
	}
}

// Updates returns the channel progress and result messages are published on
func (c *Coordinator) Updates() <-chan model.Message {
	return c.updates
}

// Busy reports whether a worker is running
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start checks the request synchronously and spawns the worker. It returns
// a *apperrors.PreconditionError without starting anything when a check fails.
func (c *Coordinator) Start(req model.DownloadRequest) (string, error) {
	job, err := c.prepare(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", req.URL).Msg("Download rejected")
		return "", err
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return "", apperrors.NewPreconditionError(apperrors.ReasonBusy, "")
	}
	c.running = true
	c.wg.Add(1)
	c.mu.Unlock()

	c.log.Info().
		Str("run", job.ID).
		Str("url", req.URL).
		Stringer("quality", req.MaxHeight).
		Str("dir", req.DestinationDir).
		Msg("Download started")

	go c.run(job)
	return job.ID, nil
}

// prepare runs the precondition checks in order; the merge tool check comes first
func (c *Coordinator) prepare(req model.DownloadRequest) (Job, error) {
	tool, err := c.locator.LocateMergeTool()
	if err != nil {
		return Job{}, apperrors.NewPreconditionError(apperrors.ReasonMergeToolMissing, "")
	}
	if req.URL == "" {
		return Job{}, apperrors.NewPreconditionError(apperrors.ReasonEmptyURL, "")
	}
	if req.DestinationDir == "" {
		return Job{}, apperrors.NewPreconditionError(apperrors.ReasonNoDestination, "")
	}
	if err := platform.CheckDirectory(c.fs, req.DestinationDir); err != nil {
		return Job{}, apperrors.NewPreconditionError(apperrors.ReasonDestinationMissing, req.DestinationDir)
	}
	if !req.MaxHeight.Valid() {
		return Job{}, apperrors.NewPreconditionError(apperrors.ReasonInvalidQuality, req.MaxHeight.String())
	}

	return Job{
		ID:        generateRunID(),
		Request:   req,
		MergeTool: tool,
	}, nil
}

// run executes the job on the worker goroutine. The busy flag is cleared
// before the result is published so the UI can start another run as soon as
// it has handled the result.
func (c *Coordinator) run(job Job) {
	defer c.wg.Done()

	started := time.Now()
	var (
		output string
		err    error
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("download worker panicked: %v", r)
		}
		if err != nil {
			err = apperrors.NewDownloadError(job.Request.URL, err)
			c.log.Error().Err(err).Str("run", job.ID).Dur("elapsed", time.Since(started)).Msg("Download failed")
		} else {
			c.log.Info().Str("run", job.ID).Str("output", output).Dur("elapsed", time.Since(started)).Msg("Download completed")
		}

		c.mu.Lock()
		c.running = false
		c.mu.Unlock()

		c.publish(model.ResultMessage{RunID: job.ID, OutputPath: output, Err: err})
	}()

	output, err = c.fetcher.Fetch(c.ctx, job, func(ev model.ProgressEvent) {
		c.publish(model.ProgressMessage{RunID: job.ID, Event: ev})
	})
}

// publish delivers a message in order; after Shutdown messages are dropped
func (c *Coordinator) publish(msg model.Message) {
	select {
	case c.updates <- msg:
	case <-c.ctx.Done():
	}
}

// Shutdown cancels a running download (killing the yt-dlp process) and waits
// for the worker to exit. It is meant for application exit only.
func (c *Coordinator) Shutdown() {
	c.cancel()
	c.wg.Wait()
}

// generateRunID generates a unique, time ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
