package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measured"
)

// NewSumCommand creates the sum command.
func NewSumCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <value ± uncertainty>...",
		Short: "Sum a sequence of measured quantities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			out := measured.Sum(operands)
			opts.Log.Debug("summed", zap.Int("n", len(operands)), zap.String("out", out.String()))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// NewProductCommand creates the product command.
func NewProductCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "product <value ± uncertainty>...",
		Short: "Multiply a sequence of measured quantities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			out, err := measured.Product(operands)
			if err != nil {
				return err
			}
			opts.Log.Debug("multiplied", zap.Int("n", len(operands)), zap.String("out", out.String()))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
