package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

// NewCanonCommand creates the canon command.
func NewCanonCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "canon <value ± uncertainty>...",
		Short: "Canonicalize measured quantities",
		Long: `Round each quantity's uncertainty to one significant digit and align its
value to the same decimal place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			for _, d := range operands {
				out := d.Canonical()
				opts.Log.Debug("canonicalized",
					zap.String("in", d.String()),
					zap.String("out", out.String()))
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
