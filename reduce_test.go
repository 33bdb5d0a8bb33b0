package measured_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measured"
)

func TestSum(t *testing.T) {
	t.Run("quadrature across the sequence", func(t *testing.T) {
		// sqrt(3² + 4²) = 5
		got := measured.Sum([]measured.Decimal{
			measured.MustParse("10.0 ± 3"),
			measured.MustParse("20.0 ± 4"),
		})
		assert.Equal(t, "30 ± 5", got.String())
	})

	t.Run("single element canonicalizes", func(t *testing.T) {
		got := measured.Sum([]measured.Decimal{measured.MustParse("1.7775 ± 0.6")})
		assert.Equal(t, "1.8 ± 0.6", got.String())
	})

	t.Run("empty yields zero", func(t *testing.T) {
		got := measured.Sum(nil)
		assert.Equal(t, "0 ± 0", got.String())
	})

	t.Run("matches chained add uncertainty", func(t *testing.T) {
		// Sum does not truncate intermediate values, so only compare the
		// canonical uncertainties.
		a := measured.MustParse("10.0 ± 3")
		b := measured.MustParse("20.0 ± 4")
		chained := a.Add(b)
		reduced := measured.Sum([]measured.Decimal{a, b})
		assert.Equal(t, chained.Uncertainty.String(), reduced.Uncertainty.String())
	})
}

func TestProduct(t *testing.T) {
	t.Run("relative quadrature scaled by product", func(t *testing.T) {
		got, err := measured.Product([]measured.Decimal{
			measured.MustParse("2.0 ± 0.1"),
			measured.MustParse("3.0 ± 0.2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "6.0 ± 0.5", got.String())
	})

	t.Run("empty yields exact one", func(t *testing.T) {
		got, err := measured.Product(nil)
		require.NoError(t, err)
		assert.Equal(t, "1 ± 0", got.String())
	})

	t.Run("zero element rejected", func(t *testing.T) {
		_, err := measured.Product([]measured.Decimal{
			measured.MustParse("2.0 ± 0.1"),
			measured.MustParse("0 ± 0.2"),
		})
		assert.ErrorIs(t, err, measured.ErrZeroOperand)
	})

	t.Run("exact inputs stay exact", func(t *testing.T) {
		// No spurious variance beyond the inputs' own: certain factors
		// produce a certain product.
		got, err := measured.Product([]measured.Decimal{
			measured.MustParse("2 ± 0"),
			measured.MustParse("3 ± 0"),
		})
		require.NoError(t, err)
		assert.Equal(t, "6 ± 0", got.String())
	})
}
