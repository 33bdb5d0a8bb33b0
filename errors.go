package measured

import "errors"

var (
	// ErrMalformed reports input that does not parse as "value ± uncertainty".
	ErrMalformed = errors.New("malformed measured decimal")

	// ErrZeroOperand reports relative-error propagation through a central
	// value of exactly zero.
	ErrZeroOperand = errors.New("zero central value in relative-error propagation")

	// ErrSampleSize reports a sample too small for a Bessel-corrected
	// standard deviation.
	ErrSampleSize = errors.New("at least two samples required")

	// ErrDigits reports a significant-digit target outside the native range.
	ErrDigits = errors.New("significant-digit count out of range")
)
