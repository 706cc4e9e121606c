package model

// DownloadState is the single UI-facing state of the application. It is owned
// by the UI goroutine; workers never touch it and instead send Messages that
// are applied here in the order received.
type DownloadState struct {
	RunID           string
	Status          RunStatus
	PercentComplete float64 // 0 to 100
	PercentText     string
	Speed           string
	ETA             string
	Processing      bool   // file downloaded, merge still pending
	OutputPath      string // set on success when the tool reports it
	Err             error  // set on failure
}

// NewDownloadState returns an idle state
func NewDownloadState() DownloadState {
	return DownloadState{Status: RunStatusIdle}
}

// Begin moves the state to Running for a new run and resets progress.
// The progress texts stay empty until the first downloading event.
func (s *DownloadState) Begin(runID string) {
	*s = DownloadState{
		RunID:  runID,
		Status: RunStatusRunning,
	}
}

// Reported tells whether a downloading event has been applied in this run
func (s DownloadState) Reported() bool {
	return s.PercentText != ""
}

// Apply applies a worker message and reports whether the state changed.
// Messages of other runs, and any message once the run is no longer
// Running, are ignored.
func (s *DownloadState) Apply(msg Message) bool {
	if msg == nil || s.Status != RunStatusRunning || msg.Run() != s.RunID {
		return false
	}

	switch m := msg.(type) {
	case ProgressMessage:
		s.applyProgress(m.Event)
	case ResultMessage:
		s.Processing = false
		if m.Err != nil {
			s.Status = RunStatusFailed
			s.Err = m.Err
			return true
		}
		s.Status = RunStatusSucceeded
		s.OutputPath = m.OutputPath
		s.PercentComplete = 100
	default:
		return false
	}
	return true
}

// applyProgress updates the progress fields from a single event
func (s *DownloadState) applyProgress(ev ProgressEvent) {
	switch ev.Kind {
	case EventDownloading:
		s.Processing = false
		if ev.TotalBytes > 0 {
			s.PercentComplete = Percent(ev.DownloadedBytes, ev.TotalBytes)
		}
		s.PercentText = FormatPercent(ev.DownloadedBytes, ev.TotalBytes)
		s.Speed = orNA(ev.Speed)
		s.ETA = orNA(ev.ETA)
	case EventFinished:
		s.Processing = true
	}
}

// Settle returns a finished run to Idle. The outcome fields (OutputPath, Err)
// are kept for display until the next run begins.
func (s *DownloadState) Settle() {
	if !s.Status.IsTerminal() {
		return
	}
	s.Status = RunStatusIdle
	s.Processing = false
}

// Fraction returns progress in [0,1] for a progress bar
func (s DownloadState) Fraction() float64 {
	return s.PercentComplete / 100
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
