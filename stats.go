package measured

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/GriffinCanCode/measured/internal/decimal"
)

// Average builds a measured quantity from plain repeated measurements:
// the arithmetic mean plus the Bessel-corrected sample standard deviation
// as its uncertainty, canonicalized. Fewer than two samples leave the
// n-1 divisor non-positive and yield ErrSampleSize.
func Average(samples []*apd.Decimal) (Decimal, error) {
	if len(samples) < 2 {
		return Decimal{}, ErrSampleSize
	}
	ctx := decimal.Context()
	n := apd.New(int64(len(samples)), 0)

	sum := new(apd.Decimal)
	for _, s := range samples {
		must(ctx.Add(sum, sum, s))
	}
	mean := new(apd.Decimal)
	must(ctx.Quo(mean, sum, n))

	sumSq := new(apd.Decimal)
	diff := new(apd.Decimal)
	for _, s := range samples {
		must(ctx.Sub(diff, s, mean))
		must(ctx.Mul(diff, diff, diff))
		must(ctx.Add(sumSq, sumSq, diff))
	}

	nm1 := new(apd.Decimal)
	must(ctx.Sub(nm1, n, apd.New(1, 0)))
	variance := new(apd.Decimal)
	must(ctx.Quo(variance, sumSq, nm1))

	return Decimal{Value: *mean, Uncertainty: *decimal.Sqrt(variance)}.Canonical(), nil
}
