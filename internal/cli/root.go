// Package cli implements the measured command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/measured"
	"github.com/GriffinCanCode/measured/internal/config"
	"github.com/GriffinCanCode/measured/internal/logging"
)

// Options holds state shared by all commands.
type Options struct {
	Log *logging.Logger
}

// NewRootCommand creates the root command for the measured CLI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "measured",
		Short: "Decimal arithmetic with propagated uncertainty",
		Long: `measured evaluates arithmetic over quantities written "value ± uncertainty",
propagating standard errors in quadrature and reporting every result with
the uncertainty rounded to one significant digit and the value aligned to
the same decimal place.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadOrDefault()
			log, err := logging.New(logging.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
			})
			if err != nil {
				log = logging.NewDefault()
			}
			opts.Log = log
		},
	}

	cmd.AddCommand(NewCanonCommand(opts))
	cmd.AddCommand(NewRoundCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewMulCommand(opts))
	cmd.AddCommand(NewDivCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewAvgCommand(opts))

	return cmd
}

// parseOperands parses each argument as a "value ± uncertainty" pair.
func parseOperands(args []string) ([]measured.Decimal, error) {
	operands := make([]measured.Decimal, 0, len(args))
	for _, arg := range args {
		d, err := measured.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", arg, err)
		}
		operands = append(operands, d)
	}
	return operands, nil
}
