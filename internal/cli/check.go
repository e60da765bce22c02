package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"comchemkit/pkg/qm"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Classify job completion states",
}

var checkDoneCmd = &cobra.Command{
	Use:   "done [dir or files...]",
	Short: "List jobs that terminated normally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listByStatus(args, qm.StatusCompleted)
	},
}

var checkErrorsCmd = &cobra.Command{
	Use:   "errors [dir or files...]",
	Short: "List jobs that failed, with the recognized failure mode",
	RunE:  runCheckErrors,
}

var checkPCMCmd = &cobra.Command{
	Use:   "pcm [dir or files...]",
	Short: "List jobs whose implicit-solvation solver failed to converge",
	RunE:  runCheckPCM,
}

var checkAllCmd = &cobra.Command{
	Use:   "all [dir or files...]",
	Short: "Report the status of every job",
	RunE:  runCheckAll,
}

func init() {
	checkCmd.AddCommand(checkDoneCmd, checkErrorsCmd, checkPCMCmd, checkAllCmd)
	rootCmd.AddCommand(checkCmd)
}

func listByStatus(args []string, want qm.JobStatus) error {
	prog, err := newProgram()
	if err != nil {
		return err
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	n := 0
	for _, f := range files {
		if prog.CheckStatus(f) == want {
			fmt.Println(f)
			n++
		}
	}
	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "%d of %d files %s\n", n, len(files), want)
	}
	return nil
}

func runCheckErrors(cmd *cobra.Command, args []string) error {
	prog, err := newProgram()
	if err != nil {
		return err
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	detailer, _ := prog.(interface{ ErrorDetail(string) string })
	n := 0
	for _, f := range files {
		if prog.CheckStatus(f) != qm.StatusError {
			continue
		}
		n++
		if detailer != nil {
			if detail := detailer.ErrorDetail(f); detail != "" {
				fmt.Printf("%s\t%s\n", f, detail)
				continue
			}
		}
		fmt.Println(f)
	}
	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "%d of %d files errored\n", n, len(files))
	}
	return nil
}

func runCheckPCM(cmd *cobra.Command, args []string) error {
	prog, err := newProgram()
	if err != nil {
		return err
	}
	checker, ok := prog.(interface{ PCMFailure(string) bool })
	if !ok {
		return fmt.Errorf("%s does not report PCM convergence failures", prog.Name())
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	n := 0
	for _, f := range files {
		if checker.PCMFailure(f) {
			fmt.Println(f)
			n++
		}
	}
	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "%d of %d files hit PCM failures\n", n, len(files))
	}
	return nil
}

func runCheckAll(cmd *cobra.Command, args []string) error {
	prog, err := newProgram()
	if err != nil {
		return err
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	detailer, _ := prog.(interface{ ErrorDetail(string) string })
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, f := range files {
		status := prog.CheckStatus(f)
		detail := ""
		if status == qm.StatusError && detailer != nil {
			detail = detailer.ErrorDetail(f)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, status, detail)
	}
	return tw.Flush()
}
