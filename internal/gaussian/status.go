package gaussian

import (
	"strings"

	"comchemkit/pkg/qm"
)

// CheckStatus classifies a log file. The marker checks run in a fixed
// order: normal termination wins over any error marker, error markers
// win over PCM convergence markers, and a readable file matching
// nothing is INTERRUPTED. Only an unreadable file is UNKNOWN.
func (p *Program) CheckStatus(path string) qm.JobStatus {
	content, err := readOutput(path)
	if err != nil {
		return qm.StatusUnknown
	}
	switch {
	case normalTermination.MatchString(content):
		return qm.StatusCompleted
	case errorMarkers.MatchString(content):
		return qm.StatusError
	case pcmMarkers.MatchString(content):
		return qm.StatusError
	default:
		return qm.StatusInterrupted
	}
}

// PCMFailure reports whether the run died in the implicit-solvation
// solver specifically. Unreadable input reports false.
func (p *Program) PCMFailure(path string) bool {
	content, err := readOutput(path)
	if err != nil {
		return false
	}
	return pcmMarkers.MatchString(content)
}

// ErrorDetail names the first recognized failure mode in the file, or
// "" when none (or the file is unreadable).
func (p *Program) ErrorDetail(path string) string {
	content, err := readOutput(path)
	if err != nil {
		return ""
	}
	switch {
	case strings.Contains(content, "Error termination"):
		return "Error termination"
	case strings.Contains(content, "Fatal Error"):
		return "Fatal error"
	case strings.Contains(content, "Erroneous write"):
		return "Write error"
	case strings.Contains(content, "File lengths"):
		return "File length mismatch"
	case strings.Contains(content, "Error in internal coordinate system"):
		return "Internal coordinate error"
	case pcmMarkers.MatchString(content):
		return "PCM convergence failure"
	}
	return ""
}
