// Package batch runs the per-file contract operations across many
// files concurrently. The backends themselves are stateless, so all
// scheduling lives here on the caller side, along with the
// max-file-size rejection the core expects to happen before a file
// reaches it.
package batch

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"comchemkit/pkg/qm"
)

// Options bound the batch run.
type Options struct {
	Workers     int
	MaxFileSize int64 // bytes; 0 means no limit
}

// Result is the full per-file outcome. Err records an extraction or
// size-limit failure for that file only; other files proceed.
type Result struct {
	Path     string
	Energies qm.EnergyComponents
	Meta     qm.CalculationMetadata
	Status   qm.JobStatus
	Err      error
}

// Process classifies, extracts and describes every path using prog.
// Results come back in input order regardless of completion order.
// Cancellation is cooperative between files; a file already being
// parsed finishes.
func Process(ctx context.Context, prog qm.Program, paths []string, opts Options) []Result {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Path: path, Status: qm.StatusUnknown, Err: err}
				return nil
			}
			results[i] = one(prog, path, opts.MaxFileSize)
			return nil
		})
	}
	g.Wait()
	return results
}

func one(prog qm.Program, path string, maxSize int64) Result {
	r := Result{Path: path}
	if maxSize > 0 {
		info, err := os.Stat(path)
		if err == nil && info.Size() > maxSize {
			r.Status = qm.StatusUnknown
			r.Err = fmt.Errorf("%s: file exceeds %d byte limit", path, maxSize)
			return r
		}
	}
	r.Status = prog.CheckStatus(path)
	r.Meta = prog.Metadata(path)
	r.Energies, r.Err = prog.ExtractEnergies(path)
	return r
}
