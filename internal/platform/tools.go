package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// MergeToolName is the executable that muxes separate video and audio streams
const MergeToolName = "ffmpeg"

// ErrToolNotFound is returned when the merge tool cannot be located.
var ErrToolNotFound = errors.New("executable not found")

// ToolLocator finds the merge tool before a download starts.
type ToolLocator interface {
	LocateMergeTool() (string, error)
}

// ExecLocator resolves the merge tool through the executable search path.
// A non-empty override path takes precedence over the search path.
type ExecLocator struct {
	Name     string
	override func() string
}

// NewMergeToolLocator creates a locator for ffmpeg. override may be nil.
func NewMergeToolLocator(override func() string) *ExecLocator {
	return &ExecLocator{Name: MergeToolName, override: override}
}

// LocateMergeTool returns the absolute path of the merge tool. It is
// evaluated on every call so a tool installed while the app runs is picked up.
func (l *ExecLocator) LocateMergeTool() (string, error) {
	name := l.Name
	if l.override != nil {
		if p := strings.TrimSpace(l.override()); p != "" {
			name = p
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, err)
	}
	return path, nil
}
