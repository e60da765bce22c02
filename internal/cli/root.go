// Package cli wires the toolkit into the cck command tree. Everything
// here is glue: argument parsing, file collection, output selection.
// The extraction logic itself lives behind the qm.Program contract.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"comchemkit/internal/config"
	"comchemkit/pkg/qm"

	// registered backends
	_ "comchemkit/internal/gaussian"
	_ "comchemkit/internal/orca"
)

var (
	flagProgram string
	flagConfig  string
	flagTemp    float64
	flagConc    float64
	flagExt     string
	flagFormat  string
	flagWorkers int
	flagMaxSize int64
	flagSort    int
	flagQuiet   bool
	flagVerbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cck",
	Short: "cck extracts thermodynamic data from quantum chemistry output files",
	Long: `ComChemKit (cck) reads the log files produced by quantum chemistry
programs, extracts energies and thermodynamic corrections, classifies
job completion states, and reports the results as sorted tables, CSV
or JSON. Backends are pluggable; Gaussian is the reference
implementation and ORCA is also supported.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if flagVerbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cfg, err = config.Load(flagConfig)
		if err != nil {
			// bad config is a warning, not a refusal to run
			logger.Warn("configuration ignored", zap.Error(err))
		}
		flags := cmd.Flags()
		if flags.Changed("program") {
			cfg.Program = flagProgram
		}
		if flags.Changed("temp") {
			cfg.Temperature = flagTemp
		}
		if flags.Changed("conc") {
			cfg.Concentration = flagConc
		}
		if flags.Changed("ext") {
			cfg.Extension = flagExt
		}
		if flags.Changed("workers") {
			cfg.Workers = flagWorkers
		}
		if flags.Changed("max-size") {
			cfg.MaxFileSizeMB = flagMaxSize
		}
		if flags.Changed("sort") {
			cfg.SortColumn = flagSort
		}
		if flags.Changed("quiet") {
			cfg.Quiet = flagQuiet
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagProgram, "program", "p", "gaussian", "quantum chemistry program backend")
	pf.StringVar(&flagConfig, "config", config.DefaultFile, "configuration file")
	pf.Float64VarP(&flagTemp, "temp", "t", 298.15, "temperature in Kelvin")
	pf.Float64VarP(&flagConc, "conc", "c", 1.0, "solution concentration in mol/L")
	pf.StringVarP(&flagExt, "ext", "e", "log", "output file extension to process")
	pf.StringVarP(&flagFormat, "format", "f", "text", "output format: text, csv or json")
	pf.IntVarP(&flagWorkers, "workers", "w", 4, "concurrent files to process")
	pf.Int64Var(&flagMaxSize, "max-size", 100, "maximum file size in MB")
	pf.IntVar(&flagSort, "sort", 2, "column to sort by (0 file, 1 E, 2 G, 3 ZPE, 4 status)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostics")
}

// Execute runs the command tree under ctx and returns the process
// exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// newProgram resolves the configured backend and hands it the CLI
// logger when it accepts one.
func newProgram() (qm.Program, error) {
	prog, err := qm.Create(cfg.Program)
	if err != nil {
		return nil, err
	}
	if ls, ok := prog.(interface{ SetLogger(*zap.Logger) }); ok {
		ls.SetLogger(logger)
	}
	return prog, nil
}

// collectFiles expands args (directories or files; default the
// working directory) into a sorted list of output files carrying the
// configured extension. Suffix filtering happens here, not in the
// backends.
func collectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}
	suffix := "." + strings.TrimPrefix(cfg.Extension, ".")
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), suffix) {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no .%s files found", strings.TrimPrefix(suffix, "."))
	}
	return files, nil
}
