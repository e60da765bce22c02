package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comchemkit/pkg/qm"
)

// stubProgram reads a single float per file so tests can tell results
// apart without real output fixtures.
type stubProgram struct{}

func (stubProgram) Name() string              { return "stub" }
func (stubProgram) IsValidOutput(string) bool { return true }
func (stubProgram) Extensions() []string      { return []string{".log"} }
func (stubProgram) CreateInput(string, string, []string) bool {
	return false
}

func (stubProgram) ExtractEnergies(path string) (qm.EnergyComponents, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return qm.EnergyComponents{}, fmt.Errorf("%w: %s", qm.ErrFileNotFound, path)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return qm.EnergyComponents{}, err
	}
	return qm.EnergyComponents{ElectronicEnergy: v}, nil
}

func (stubProgram) Metadata(path string) qm.CalculationMetadata {
	return qm.CalculationMetadata{FilePath: path}
}

func (stubProgram) CheckStatus(path string) qm.JobStatus {
	if _, err := os.Stat(path); err != nil {
		return qm.StatusUnknown
	}
	return qm.StatusCompleted
}

func writeFiles(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("job%02d.log", i))
		content := fmt.Sprintf("-%d.5\n", i)
		require.NoError(t, os.WriteFile(paths[i], []byte(content), 0644))
	}
	return paths
}

func TestProcessOrder(t *testing.T) {
	paths := writeFiles(t, 20)
	results := Process(context.Background(), stubProgram{}, paths, Options{Workers: 4})

	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.NoError(t, r.Err)
		assert.Equal(t, -float64(i)-0.5, r.Energies.ElectronicEnergy)
		assert.Equal(t, qm.StatusCompleted, r.Status)
	}
}

func TestProcessErrorIsolation(t *testing.T) {
	paths := writeFiles(t, 3)
	paths[1] = filepath.Join(t.TempDir(), "missing.log")

	results := Process(context.Background(), stubProgram{}, paths, Options{Workers: 2})

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, qm.ErrFileNotFound)
	assert.Equal(t, qm.StatusUnknown, results[1].Status)
	assert.NoError(t, results[2].Err)
}

func TestProcessSizeLimit(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.log")
	require.NoError(t, os.WriteFile(big, []byte(strings.Repeat("-1.0 ", 100)), 0644))
	small := filepath.Join(dir, "small.log")
	require.NoError(t, os.WriteFile(small, []byte("-2.0\n"), 0644))

	results := Process(context.Background(), stubProgram{}, []string{big, small},
		Options{Workers: 1, MaxFileSize: 64})

	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "byte limit")
	assert.Equal(t, qm.StatusUnknown, results[0].Status)
	assert.NoError(t, results[1].Err)
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := writeFiles(t, 5)
	results := Process(ctx, stubProgram{}, paths, Options{Workers: 2})

	// already-cancelled context: every file is skipped with its error
	// recorded, none silently dropped
	require.Len(t, results, 5)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestProcessDefaultWorkers(t *testing.T) {
	paths := writeFiles(t, 2)
	results := Process(context.Background(), stubProgram{}, paths, Options{})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
}
