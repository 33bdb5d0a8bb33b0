package measured

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/GriffinCanCode/measured/internal/decimal"
)

// Decimal is a measured quantity: a best-estimate central value and one
// standard error. The uncertainty is logically non-negative. The zero
// Decimal is a usable 0 ± 0.
//
// A Decimal is canonical when its uncertainty carries exactly one
// significant digit (or the degenerate form described at Canonical) and
// its value is rounded to the uncertainty's decimal place. Operations
// return canonical results; a Decimal built directly via New or Parse
// keeps its given representation until Canonical is applied.
type Decimal struct {
	Value       apd.Decimal
	Uncertainty apd.Decimal
}

// New returns a Decimal holding copies of value and uncertainty, each
// rounded to the native width of 34 significant digits. The pair is not
// otherwise canonicalized.
func New(value, uncertainty *apd.Decimal) Decimal {
	var d Decimal
	d.Value.Set(value)
	d.Uncertainty.Set(uncertainty)
	decimal.Narrow(&d.Value)
	decimal.Narrow(&d.Uncertainty)
	return d
}

// Canonical enforces the reporting invariant:
//
//  1. The uncertainty is reduced to exactly one significant digit,
//     rounding half up.
//  2. The value is quantized to the uncertainty's decimal place whenever
//     that is representable at native width.
//  3. If the value's magnitude is too large to express at the
//     uncertainty's place, the one-digit uncertainty is meaningless at
//     the value's resolution: the uncertainty becomes exactly 1 at the
//     value's own decimal place instead.
//
// Canonical is idempotent.
func (d Decimal) Canonical() Decimal {
	ctx := decimal.Context()

	u := new(apd.Decimal)
	u.Reduce(&d.Uncertainty)
	decimal.WithMaxDigits(ctx, u, 1)

	v := new(apd.Decimal)
	if _, err := ctx.Quantize(v, &d.Value, u.Exponent); err != nil {
		v.Set(&d.Value)
		u = apd.New(1, v.Exponent)
	}
	return Decimal{Value: *v, Uncertainty: *u}
}

// WithDigits re-rounds the central value to the given count of
// significant digits and re-canonicalizes. The count must be between 1
// and the native width of 34.
func (d Decimal) WithDigits(digits int) (Decimal, error) {
	if digits < 1 || digits > decimal.NativeDigits {
		return Decimal{}, fmt.Errorf("%w: %d", ErrDigits, digits)
	}
	v := new(apd.Decimal).Set(&d.Value)
	decimal.WithDigits(v, int64(digits))
	return Decimal{Value: *v, Uncertainty: d.Uncertainty}.Canonical(), nil
}

// Neg returns the negation. The uncertainty is a sign-agnostic magnitude
// and is unchanged.
func (d Decimal) Neg() Decimal {
	var out Decimal
	out.Value.Neg(&d.Value)
	out.Uncertainty.Set(&d.Uncertainty)
	return out
}

// must asserts that a context operation on in-range operands succeeded.
// Operands here are always finite native-width decimals, so a failure is
// an internal fault.
func must(_ apd.Condition, err error) {
	if err != nil {
		panic(fmt.Sprintf("measured: decimal operation failed: %v", err))
	}
}
