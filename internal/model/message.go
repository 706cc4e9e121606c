package model

// EventKind mirrors the status field of a yt-dlp progress hook
type EventKind string

const (
	// EventDownloading is reported repeatedly while bytes are transferred
	EventDownloading EventKind = "downloading"

	// EventFinished is reported once a file is on disk; merging may still be pending
	EventFinished EventKind = "finished"
)

// ProgressEvent is a single progress report from the download tool.
type ProgressEvent struct {
	Kind            EventKind
	DownloadedBytes int64
	TotalBytes      int64 // 0 if unknown
	Speed           string
	ETA             string
}

// Message is sent by a download worker to the UI goroutine. The set of
// implementations is closed: ProgressMessage and ResultMessage.
type Message interface {
	Run() string
	isMessage()
}

// ProgressMessage carries one progress event of a run
type ProgressMessage struct {
	RunID string
	Event ProgressEvent
}

// ResultMessage is the last message of a run. Err is nil on success.
type ResultMessage struct {
	RunID      string
	OutputPath string
	Err        error
}

// Run returns the ID of the run that produced the message
func (m ProgressMessage) Run() string { return m.RunID }

// Run returns the ID of the run that produced the message
func (m ResultMessage) Run() string { return m.RunID }

func (ProgressMessage) isMessage() {}
func (ResultMessage) isMessage()   {}
