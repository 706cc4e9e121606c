package download

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ytget/ytdl-gui/internal/model"
)

// Session owns the single DownloadState of the application and applies
// worker messages to it on the UI goroutine.
type Session struct {
	starter   Starter
	presenter Presenter
	dispatch  Dispatcher
	log       zerolog.Logger

	state model.DownloadState
}

// NewSession creates a session bound to a coordinator and a presenter.
// dispatch must run functions on the UI goroutine (fyne.DoAndWait).
func NewSession(starter Starter, presenter Presenter, dispatch Dispatcher, logger zerolog.Logger) *Session {
	return &Session{
		starter:   starter,
		presenter: presenter,
		dispatch:  dispatch,
		log:       logger.With().Str("component", "session").Logger(),
		state:     model.NewDownloadState(),
	}
}

// State returns a copy of the current state. UI goroutine only.
func (s *Session) State() model.DownloadState {
	return s.state
}

// Start begins a download. Must be called on the UI goroutine. Precondition
// failures are returned unchanged and leave the state untouched.
func (s *Session) Start(req model.DownloadRequest) error {
	runID, err := s.starter.Start(req)
	if err != nil {
		return err
	}
	s.state.Begin(runID)
	s.presenter.Render(s.state)
	return nil
}

// Run drains the coordinator's messages until ctx is done, handing each one
// to the UI goroutine in the order received.
func (s *Session) Run(ctx context.Context) {
	updates := s.starter.Updates()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-updates:
			s.dispatch(func() { s.handle(msg) })
		}
	}
}

// handle applies a message. On a terminal result the presenter is notified
// and the UI is restored; restoring is deferred so it happens on every path.
func (s *Session) handle(msg model.Message) {
	if msg == nil {
		return
	}
	if !s.state.Apply(msg) {
		s.log.Debug().Str("run", msg.Run()).Msg("Ignoring stale message")
		return
	}

	if !s.state.Status.IsTerminal() {
		s.presenter.Render(s.state)
		return
	}

	defer func() {
		s.presenter.Restore()
		s.state.Settle()
	}()

	s.presenter.Render(s.state)
	s.presenter.Notify(s.state)
}
