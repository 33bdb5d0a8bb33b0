package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measured"
)

// binaryOp applies one propagated binary operator to two parsed operands.
type binaryOp func(a, b measured.Decimal) (measured.Decimal, error)

// NewAddCommand creates the add command.
func NewAddCommand(opts *Options) *cobra.Command {
	return newBinaryCommand(opts, "add", "Add two measured quantities",
		func(a, b measured.Decimal) (measured.Decimal, error) {
			return a.Add(b), nil
		})
}

// NewSubCommand creates the sub command.
func NewSubCommand(opts *Options) *cobra.Command {
	return newBinaryCommand(opts, "sub", "Subtract two measured quantities",
		func(a, b measured.Decimal) (measured.Decimal, error) {
			return a.Sub(b), nil
		})
}

// NewMulCommand creates the mul command.
func NewMulCommand(opts *Options) *cobra.Command {
	return newBinaryCommand(opts, "mul", "Multiply two measured quantities", measured.Decimal.Mul)
}

// NewDivCommand creates the div command.
func NewDivCommand(opts *Options) *cobra.Command {
	return newBinaryCommand(opts, "div", "Divide two measured quantities", measured.Decimal.Div)
}

func newBinaryCommand(opts *Options, name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}
			out, err := op(operands[0], operands[1])
			if err != nil {
				return err
			}
			opts.Log.Debug("evaluated",
				zap.String("op", name),
				zap.String("a", operands[0].String()),
				zap.String("b", operands[1].String()),
				zap.String("out", out.String()))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
