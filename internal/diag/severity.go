package diag

// Severity is the resolved disposition of a diagnostic. Lint findings
// arrive here with the lint level already applied: warn maps to
// SevWarning, deny to SevError, and allow never reaches a reporter.
type Severity uint8

const (
	// SevInfo marks informational output that never affects exit status.
	SevInfo Severity = iota
	// SevWarning marks findings the run reports but does not fail on.
	SevWarning
	// SevError marks findings that fail the run, including denied lints
	// and internal defects.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
