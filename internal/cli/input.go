package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagMethod   string
	flagKeywords string
)

var inputCmd = &cobra.Command{
	Use:   "input <file>",
	Short: "Write a minimal input-file skeleton for the selected backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := newProgram()
		if err != nil {
			return err
		}
		var keywords []string
		if flagKeywords != "" {
			keywords = strings.Split(flagKeywords, ",")
		}
		if !prog.CreateInput(args[0], flagMethod, keywords) {
			return fmt.Errorf("could not write input file %s", args[0])
		}
		if !cfg.Quiet {
			fmt.Printf("wrote %s skeleton to %s\n", prog.Name(), args[0])
		}
		return nil
	},
}

func init() {
	inputCmd.Flags().StringVarP(&flagMethod, "method", "m", "B3LYP/6-31G(d)", "method and basis for the route line")
	inputCmd.Flags().StringVarP(&flagKeywords, "keywords", "k", "", "comma-separated extra keywords")
	rootCmd.AddCommand(inputCmd)
}
