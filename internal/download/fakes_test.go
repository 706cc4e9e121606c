package download

import (
	"context"
	"errors"
	"sync"

	"github.com/ytget/ytdl-gui/internal/model"
)

// fakeLocator reports a fixed merge tool path or error
type fakeLocator struct {
	path string
	err  error
}

func (l fakeLocator) LocateMergeTool() (string, error) {
	return l.path, l.err
}

var (
	toolPresent = fakeLocator{path: "/usr/bin/ffmpeg"}
	toolMissing = fakeLocator{err: errors.New("executable not found: ffmpeg")}
)

// fakeFetcher replays events and returns a fixed result. When release is set
// it blocks until the channel is closed, so tests can observe a running worker.
type fakeFetcher struct {
	events  []model.ProgressEvent
	output  string
	err     error
	panics  bool
	release chan struct{}

	mu    sync.Mutex
	calls []Job
}

func (f *fakeFetcher) Fetch(ctx context.Context, job Job, onProgress ProgressFunc) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, job)
	f.mu.Unlock()

	for _, ev := range f.events {
		onProgress(ev)
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.panics {
		panic("boom")
	}
	return f.output, f.err
}

func (f *fakeFetcher) Calls() []Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Job(nil), f.calls...)
}

// recordingPresenter records every presenter call in order
type recordingPresenter struct {
	mu          sync.Mutex
	rendered    []model.DownloadState
	notified    []model.DownloadState
	restores    int
	calls       []string
	panicNotify bool
}

func (p *recordingPresenter) Render(state model.DownloadState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rendered = append(p.rendered, state)
	p.calls = append(p.calls, "render")
}

func (p *recordingPresenter) Notify(state model.DownloadState) {
	p.mu.Lock()
	p.notified = append(p.notified, state)
	p.calls = append(p.calls, "notify")
	p.mu.Unlock()
	if p.panicNotify {
		panic("alert failed")
	}
}

func (p *recordingPresenter) Restore() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restores++
	p.calls = append(p.calls, "restore")
}

func (p *recordingPresenter) snapshot() (rendered, notified []model.DownloadState, restores int, calls []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.DownloadState(nil), p.rendered...),
		append([]model.DownloadState(nil), p.notified...),
		p.restores,
		append([]string(nil), p.calls...)
}

// uiLoop serializes functions like a single UI goroutine would
type uiLoop struct {
	mu sync.Mutex
}

func (l *uiLoop) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}
