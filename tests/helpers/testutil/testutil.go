// Package testutil provides assertion helpers shared by measured tests.
package testutil

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/measured"
)

// RequireDecimal parses a plain decimal, failing the test on bad input.
func RequireDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err, "parsing decimal %q", s)
	return d
}

// RequireMeasured parses a "value ± uncertainty" pair, failing the test on
// bad input.
func RequireMeasured(t *testing.T, s string) measured.Decimal {
	t.Helper()
	d, err := measured.Parse(s)
	require.NoError(t, err, "parsing measured decimal %q", s)
	return d
}

// AssertCanonical asserts the reporting invariant: one significant digit
// of uncertainty, value aligned to the same decimal place.
func AssertCanonical(t *testing.T, d measured.Decimal) {
	t.Helper()
	assert.Equal(t, int64(1), d.Uncertainty.NumDigits(),
		"%s: uncertainty must carry exactly one significant digit", d)
	assert.Equal(t, d.Uncertainty.Exponent, d.Value.Exponent,
		"%s: value and uncertainty must share a decimal place", d)
}
