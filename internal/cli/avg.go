package cli

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measured"
)

// NewAvgCommand creates the avg command.
func NewAvgCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "avg <measurement>...",
		Short: "Average plain measurements into mean ± standard deviation",
		Long: `Build a measured quantity from two or more plain decimal measurements:
the arithmetic mean, with the Bessel-corrected sample standard deviation
as its uncertainty.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := make([]*apd.Decimal, 0, len(args))
			for _, arg := range args {
				s, _, err := apd.NewFromString(arg)
				if err != nil {
					return fmt.Errorf("measurement %q: %w", arg, err)
				}
				samples = append(samples, s)
			}
			out, err := measured.Average(samples)
			if err != nil {
				return err
			}
			opts.Log.Debug("averaged", zap.Int("n", len(samples)), zap.String("out", out.String()))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
