package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRoundCommand creates the round command.
func NewRoundCommand(opts *Options) *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:   "round <value ± uncertainty>",
		Short: "Re-round a quantity's value to a significant-digit count",
		Long: `Re-round the central value to the requested number of significant digits,
then re-canonicalize the pair.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			out, err := operands[0].WithDigits(digits)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&digits, "digits", "d", 3, "significant digits for the central value (1-34)")
	return cmd
}
