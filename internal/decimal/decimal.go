// Package decimal wraps the apd decimal primitive with the rounding,
// digit-count, and square-root helpers the measured library is built on.
// Every helper constructs its own arithmetic context; contexts are never
// shared between calls.
package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

const (
	// NativeDigits is the significand width of the decimal128 class the
	// library models: 34 significant digits.
	NativeDigits = 34

	// sqrtDigits is the working precision for square roots, two digits
	// wider than the native width.
	sqrtDigits = 36

	// maxRescaleSteps bounds the one-place-at-a-time rescale loops. A
	// native-width coefficient is at most 34 digits, so any adjustment
	// converges well inside this bound.
	maxRescaleSteps = 64
)

// Context returns a fresh native-width context rounding half up.
func Context() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(NativeDigits)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}

// Narrow rounds d in place to the native width, half up. Finite input
// always rounds, so a failure is an internal fault.
func Narrow(d *apd.Decimal) {
	if _, err := Context().Round(d, d); err != nil {
		panic(fmt.Sprintf("decimal: narrowing %s: %v", d, err))
	}
}

// rescale moves d to the given exponent, rounding half up. The targets
// reachable from the adjustment loops are always representable, so a
// failure is an internal fault.
func rescale(ctx *apd.Context, d *apd.Decimal, exp int32) {
	if _, err := ctx.Quantize(d, d, exp); err != nil {
		panic(fmt.Sprintf("decimal: rescale %s to exponent %d: %v", d, exp, err))
	}
}

// WithMinDigits rescales d one decimal place finer at a time until it
// carries at least the requested significant digits. A single closed-form
// jump can misround across magnitude boundaries, so the adjustment takes
// one exact half-up step per iteration.
//
// Zero carries one coefficient digit at every scale and is returned
// unchanged.
func WithMinDigits(ctx *apd.Context, d *apd.Decimal, digits int64) {
	if d.IsZero() {
		return
	}
	for steps := 0; d.NumDigits() < digits; steps++ {
		if steps >= maxRescaleSteps {
			panic("decimal: min-digits rescale loop did not converge")
		}
		rescale(ctx, d, d.Exponent-1)
	}
}

// WithMaxDigits rescales d one decimal place coarser at a time until it
// carries at most the requested significant digits, rounding half up at
// each step.
func WithMaxDigits(ctx *apd.Context, d *apd.Decimal, digits int64) {
	if d.IsZero() {
		return
	}
	for steps := 0; d.NumDigits() > digits; steps++ {
		if steps >= maxRescaleSteps {
			panic("decimal: max-digits rescale loop did not converge")
		}
		rescale(ctx, d, d.Exponent+1)
	}
}

// WithDigits pins d to exactly the requested significant digits, widening
// then narrowing under half-up rounding.
func WithDigits(d *apd.Decimal, digits int64) {
	ctx := Context()
	WithMinDigits(ctx, d, digits)
	WithMaxDigits(ctx, d, digits)
}

// Sqrt returns the square root of x computed at a working precision wider
// than the native width, narrowed back to native width through the
// decimal's own text rendering.
func Sqrt(x *apd.Decimal) *apd.Decimal {
	ctx := apd.BaseContext.WithPrecision(sqrtDigits)
	ctx.Rounding = apd.RoundHalfUp

	wide := new(apd.Decimal)
	if _, err := ctx.Sqrt(wide, x); err != nil {
		panic(fmt.Sprintf("decimal: sqrt of %s: %v", x, err))
	}

	out, _, err := apd.NewFromString(wide.String())
	if err != nil {
		// The rendering above is always a valid decimal string.
		panic(fmt.Sprintf("decimal: sqrt round-trip of %q: %v", wide.String(), err))
	}
	Narrow(out)
	return out
}
