package apperrors

import "fmt"

// PreconditionReason identifies which start check failed.
type PreconditionReason string

const (
	ReasonMergeToolMissing   PreconditionReason = "merge_tool_missing"
	ReasonEmptyURL           PreconditionReason = "empty_url"
	ReasonNoDestination      PreconditionReason = "no_destination"
	ReasonDestinationMissing PreconditionReason = "destination_missing"
	ReasonInvalidQuality     PreconditionReason = "invalid_quality"
	ReasonBusy               PreconditionReason = "busy"
)

// PreconditionError is returned synchronously by Start before any background
// work is spawned.
type PreconditionError struct {
	Reason PreconditionReason
	Detail string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	var msg string
	switch e.Reason {
	case ReasonMergeToolMissing:
		msg = "ffmpeg is required for merging formats but is not installed"
	case ReasonEmptyURL:
		msg = "please enter a YouTube URL"
	case ReasonNoDestination:
		msg = "please choose a download location"
	case ReasonDestinationMissing:
		msg = "download location does not exist"
	case ReasonInvalidQuality:
		msg = "unsupported video quality"
	case ReasonBusy:
		msg = "a download is already running"
	default:
		msg = "precondition failed"
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Is allows for error checking with errors.Is(). A target with an empty
// Reason matches any PreconditionError.
func (e *PreconditionError) Is(target error) bool {
	t, ok := target.(*PreconditionError)
	if !ok {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(reason PreconditionReason, detail string) *PreconditionError {
	return &PreconditionError{Reason: reason, Detail: detail}
}

// DownloadError wraps any failure of the download tool during a background run.
type DownloadError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DownloadError) Error() string {
	return fmt.Sprintf("an error occurred: %v", e.Err)
}

// Unwrap returns the underlying tool error.
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *DownloadError) Is(target error) bool {
	_, ok := target.(*DownloadError)
	return ok
}

// NewDownloadError creates a new DownloadError.
func NewDownloadError(url string, err error) *DownloadError {
	return &DownloadError{URL: url, Err: err}
}
