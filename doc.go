// Package measured implements arithmetic on measured quantities carried
// as a central value plus one standard error, rendered "value ± uncertainty".
//
// Results follow the scientific reporting convention: the uncertainty is
// rounded to a single significant digit and the value is aligned to the
// same decimal place. Canonical is the checkpoint that enforces this;
// every operator, reducer, and the statistics constructor re-applies it
// to its result. All uncertainty combination assumes statistically
// independent errors and rounds half up throughout.
//
// Values are immutable: every operation returns a new Decimal. Nothing
// holds shared state, so any set of operations may run concurrently over
// independent inputs.
package measured
