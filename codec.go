package measured

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/GriffinCanCode/measured/internal/decimal"
)

// separator is the Unicode plus-minus glyph between the value and the
// uncertainty.
const separator = "±"

// Parse reads a Decimal from "<value> ± <uncertainty>" text. Surrounding
// whitespace on each side is ignored. Any grammar violation, missing
// separator or unparseable side alike, reports ErrMalformed. Each side is
// rounded to the native width of 34 significant digits; the pair is not
// otherwise canonicalized.
func Parse(s string) (Decimal, error) {
	value, uncertainty, ok := strings.Cut(s, separator)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	v, _, err := apd.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	u, _, err := apd.NewFromString(strings.TrimSpace(uncertainty))
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	decimal.Narrow(v)
	decimal.Narrow(u)
	return Decimal{Value: *v, Uncertainty: *u}, nil
}

// MustParse is Parse for statically known input; it panics on malformed
// text.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String renders "<value> ± <uncertainty>". Each side uses the decimal
// primitive's native text form: exponent and trailing-zero display are
// exactly as stored, which is why Canonical, not formatting, controls
// apparent precision.
func (d Decimal) String() string {
	return d.Value.String() + " " + separator + " " + d.Uncertainty.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
