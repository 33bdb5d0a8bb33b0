package measured

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/GriffinCanCode/measured/internal/decimal"
)

// Sum reduces a sequence of independent measurements to their total:
// values add, uncertainties combine in quadrature across the whole
// sequence. An empty sequence yields canonical 0 ± 0.
func Sum(vals []Decimal) Decimal {
	ctx := decimal.Context()

	total := new(apd.Decimal)
	sumSq := new(apd.Decimal)
	sq := new(apd.Decimal)
	for i := range vals {
		must(ctx.Add(total, total, &vals[i].Value))
		must(ctx.Mul(sq, &vals[i].Uncertainty, &vals[i].Uncertainty))
		must(ctx.Add(sumSq, sumSq, sq))
	}
	return Decimal{Value: *total, Uncertainty: *decimal.Sqrt(sumSq)}.Canonical()
}

// Product reduces a sequence of independent measurements to their
// product: values multiply, squared relative uncertainties accumulate and
// scale back by the magnitude of the product. An element with a central
// value of exactly zero yields ErrZeroOperand; an empty sequence yields
// canonical 1 ± 0.
func Product(vals []Decimal) (Decimal, error) {
	ctx := decimal.Context()

	prod := apd.New(1, 0)
	relSq := new(apd.Decimal)
	r := new(apd.Decimal)
	for i := range vals {
		if vals[i].Value.IsZero() {
			return Decimal{}, ErrZeroOperand
		}
		must(ctx.Mul(prod, prod, &vals[i].Value))
		must(ctx.Quo(r, &vals[i].Uncertainty, &vals[i].Value))
		must(ctx.Mul(r, r, r))
		must(ctx.Add(relSq, relSq, r))
	}

	u := decimal.Sqrt(relSq)
	must(ctx.Mul(u, u, prod))
	u.Abs(u)
	return Decimal{Value: *prod, Uncertainty: *u}.Canonical(), nil
}
