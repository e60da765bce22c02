package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"comchemkit/internal/batch"
	"comchemkit/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract [dir or files...]",
	Short: "Extract thermodynamic data from output files",
	Long: `Reads every matching output file, extracts electronic energy,
thermal corrections and frequencies, and prints a table sorted by the
configured column. Files that fail validation or cannot be read are
reported per file without aborting the batch.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	prog, err := newProgram()
	if err != nil {
		return err
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	results := batch.Process(cmd.Context(), prog, files, batch.Options{
		Workers:     cfg.Workers,
		MaxFileSize: cfg.MaxFileSizeMB << 20,
	})
	rows := report.FromResults(results, cfg.Temperature, cfg.Concentration)
	report.Sort(rows, cfg.SortColumn)

	switch flagFormat {
	case "csv":
		err = report.WriteCSV(os.Stdout, rows)
	case "json":
		err = report.WriteJSON(os.Stdout, rows)
	default:
		err = report.WriteText(os.Stdout, rows)
	}
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		s := report.Summarize(rows)
		fmt.Fprintf(os.Stderr,
			"%d files: %d completed, %d errored, %d interrupted; G mean %.6f Eh (σ %.6f)\n",
			s.Files, s.Completed, s.Errored, s.Interrupted,
			s.MeanGibbs, s.StdDevGibbs)
	}
	return nil
}
