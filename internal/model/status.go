package model

// RunStatus represents where the single download run is in its lifecycle
type RunStatus string

const (
	// RunStatusIdle means no download is running and the trigger is enabled
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means a worker is downloading or merging
	RunStatusRunning RunStatus = "Running"

	// RunStatusSucceeded means the last run finished without error
	RunStatusSucceeded RunStatus = "Succeeded"

	// RunStatusFailed means the last run ended with an error
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a worker owns the run
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsTerminal returns true if the run has ended (succeeded or failed)
func (rs RunStatus) IsTerminal() bool {
	return rs == RunStatusSucceeded || rs == RunStatusFailed
}
