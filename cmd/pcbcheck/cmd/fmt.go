package cmd

import (
	"fmt"

	"github.com/db47h/pcb/pcbdl"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <design-file>",
	Short: "Print a design in canonical form",
	Long: `Parse a design file, check its declarations and print it back with
chips in declaration order and connections sorted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := pcbdl.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), pcbdl.Format(d))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
