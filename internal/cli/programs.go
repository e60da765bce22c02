package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"comchemkit/pkg/qm"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List the registered quantum chemistry backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := qm.SupportedPrograms()
		sort.Strings(names)
		for _, name := range names {
			prog, err := qm.Create(name)
			if err != nil {
				return err
			}
			marker := ""
			if name == strings.ToLower(cfg.Program) {
				marker = " (default)"
			}
			fmt.Printf("%-10s %s%s\n", name, strings.Join(prog.Extensions(), " "), marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(programsCmd)
}
