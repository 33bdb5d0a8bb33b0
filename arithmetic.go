package measured

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/GriffinCanCode/measured/internal/decimal"
)

// Add returns d + o. The combined value is truncated to the less precise
// operand's significant-digit count, and the uncertainties combine in
// quadrature, before the result is canonicalized.
func (d Decimal) Add(o Decimal) Decimal {
	ctx := decimal.Context()

	v := new(apd.Decimal)
	must(ctx.Add(v, &d.Value, &o.Value))
	decimal.WithDigits(v, min(d.Value.NumDigits(), o.Value.NumDigits()))

	u := quadrature(ctx, &d.Uncertainty, &o.Uncertainty)
	return Decimal{Value: *v, Uncertainty: *u}.Canonical()
}

// Sub returns d - o, propagating uncertainty exactly as Add: the error of
// a difference is sign-agnostic.
func (d Decimal) Sub(o Decimal) Decimal {
	return d.Add(o.Neg())
}

// Mul returns d * o. Relative uncertainties combine in quadrature and
// scale back to an absolute uncertainty by the magnitude of the product.
// A central value of exactly zero on either side cannot carry a relative
// error and yields ErrZeroOperand.
func (d Decimal) Mul(o Decimal) (Decimal, error) {
	if d.Value.IsZero() || o.Value.IsZero() {
		return Decimal{}, ErrZeroOperand
	}
	ctx := decimal.Context()

	v := new(apd.Decimal)
	must(ctx.Mul(v, &d.Value, &o.Value))
	decimal.WithDigits(v, min(d.Value.NumDigits(), o.Value.NumDigits()))

	u := relQuadrature(ctx, &d, &o)
	must(ctx.Mul(u, u, &d.Value))
	must(ctx.Mul(u, u, &o.Value))
	u.Abs(u)
	return Decimal{Value: *v, Uncertainty: *u}.Canonical(), nil
}

// Div returns d / o. Relative uncertainties combine in quadrature and
// scale back by the magnitude of the quotient. Either central value being
// exactly zero yields ErrZeroOperand.
func (d Decimal) Div(o Decimal) (Decimal, error) {
	if d.Value.IsZero() || o.Value.IsZero() {
		return Decimal{}, ErrZeroOperand
	}
	ctx := decimal.Context()

	v := new(apd.Decimal)
	must(ctx.Quo(v, &d.Value, &o.Value))
	decimal.WithDigits(v, min(d.Value.NumDigits(), o.Value.NumDigits()))

	u := relQuadrature(ctx, &d, &o)
	must(ctx.Mul(u, u, &d.Value))
	must(ctx.Quo(u, u, &o.Value))
	u.Abs(u)
	return Decimal{Value: *v, Uncertainty: *u}.Canonical(), nil
}

// quadrature returns sqrt(a² + b²), the combination rule for independent
// absolute errors.
func quadrature(ctx *apd.Context, a, b *apd.Decimal) *apd.Decimal {
	aa := new(apd.Decimal)
	bb := new(apd.Decimal)
	must(ctx.Mul(aa, a, a))
	must(ctx.Mul(bb, b, b))
	must(ctx.Add(aa, aa, bb))
	return decimal.Sqrt(aa)
}

// relQuadrature returns sqrt((u1/v1)² + (u2/v2)²), the combination rule
// for independent relative errors. Callers guarantee non-zero central
// values.
func relQuadrature(ctx *apd.Context, d, o *Decimal) *apd.Decimal {
	r1 := new(apd.Decimal)
	must(ctx.Quo(r1, &d.Uncertainty, &d.Value))
	must(ctx.Mul(r1, r1, r1))

	r2 := new(apd.Decimal)
	must(ctx.Quo(r2, &o.Uncertainty, &o.Value))
	must(ctx.Mul(r2, r2, r2))

	must(ctx.Add(r1, r1, r2))
	return decimal.Sqrt(r1)
}
