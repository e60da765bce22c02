// Package gaussian implements the toolkit contract for the Gaussian
// electronic structure package. All parsing works on the complete log
// text; nothing here holds per-file state, so one Program value serves
// any number of concurrent callers.
package gaussian

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"comchemkit/pkg/qm"
)

func init() {
	qm.Register("gaussian", func() qm.Program { return New() })
}

// Program parses Gaussian log files.
type Program struct {
	log    *zap.Logger
	bounds qm.EnergyBounds
}

// New returns a backend with the default plausibility bounds and a
// no-op logger.
func New() *Program {
	return &Program{
		log: zap.NewNop(),
		// Hartree-scale sanity limits; anything outside almost
		// always means the wrong section was matched
		bounds: qm.EnergyBounds{MinElectronic: -10000, MaxElectronic: 0},
	}
}

func (p *Program) Name() string { return "Gaussian" }

func (p *Program) Extensions() []string {
	return []string{".log", ".out", ".LOG", ".OUT"}
}

// SetLogger replaces the no-op logger; used by the CLI when verbose
// diagnostics are requested.
func (p *Program) SetLogger(l *zap.Logger) {
	if l != nil {
		p.log = l
	}
}

// IsValidOutput looks for the Gaussian banner within the first 50
// lines. Unreadable input reports false, never an error.
func (p *Program) IsValidOutput(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 50; i++ {
		line := scanner.Text()
		if strings.Contains(line, "Gaussian") &&
			(strings.Contains(line, "Revision") || strings.Contains(line, "Inc.")) {
			return true
		}
	}
	return false
}

// readOutput slurps the whole log. Output files are bounded text (the
// caller rejects oversized files before they reach the backend), so
// whole-file reads are fine.
func readOutput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", qm.ErrFileNotFound, path)
	}
	return string(b), nil
}
