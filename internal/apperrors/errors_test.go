// Package apperrors tests verify the error taxonomy (PreconditionError and
// DownloadError), their messages, Is() matching and unwrapping through
// fmt.Errorf.
package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPreconditionError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *PreconditionError
		expected string
	}{
		{
			name:     "merge tool missing",
			err:      NewPreconditionError(ReasonMergeToolMissing, ""),
			expected: "ffmpeg is required for merging formats but is not installed",
		},
		{
			name:     "empty url",
			err:      NewPreconditionError(ReasonEmptyURL, ""),
			expected: "please enter a YouTube URL",
		},
		{
			name:     "no destination",
			err:      NewPreconditionError(ReasonNoDestination, ""),
			expected: "please choose a download location",
		},
		{
			name:     "with detail",
			err:      NewPreconditionError(ReasonDestinationMissing, "/nope"),
			expected: "download location does not exist: /nope",
		},
		{
			name:     "unknown reason",
			err:      &PreconditionError{Reason: "other"},
			expected: "precondition failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPreconditionError_Is(t *testing.T) {
	t.Parallel()
	err := NewPreconditionError(ReasonEmptyURL, "")

	t.Run("matches any precondition error", func(t *testing.T) {
		if !errors.Is(err, &PreconditionError{}) {
			t.Error("expected errors.Is to match *PreconditionError with empty reason")
		}
	})

	t.Run("matches same reason", func(t *testing.T) {
		if !errors.Is(err, &PreconditionError{Reason: ReasonEmptyURL}) {
			t.Error("expected errors.Is to match the same reason")
		}
	})

	t.Run("does not match other reason", func(t *testing.T) {
		if errors.Is(err, &PreconditionError{Reason: ReasonBusy}) {
			t.Error("expected errors.Is not to match a different reason")
		}
	})

	t.Run("does not match DownloadError", func(t *testing.T) {
		if errors.Is(err, &DownloadError{}) {
			t.Error("expected errors.Is not to match *DownloadError")
		}
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("start: %w", err)
		var pe *PreconditionError
		if !errors.As(wrapped, &pe) || pe.Reason != ReasonEmptyURL {
			t.Errorf("expected errors.As to find reason %q", ReasonEmptyURL)
		}
	})
}

func TestDownloadError(t *testing.T) {
	t.Parallel()
	cause := errors.New("HTTP Error 404: Not Found")
	err := NewDownloadError("https://youtu.be/abc", cause)

	if got, want := err.Error(), "an error occurred: HTTP Error 404: Not Found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
	if !errors.Is(fmt.Errorf("run: %w", err), &DownloadError{}) {
		t.Error("expected errors.Is to match *DownloadError through wrapping")
	}
	if errors.Is(err, &PreconditionError{}) {
		t.Error("expected errors.Is not to match *PreconditionError")
	}
}
