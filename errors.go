package bignum

import "fmt"

var (
	// ErrOverflow is returned when a decimal literal exceeds the configured
	// maximum literal length (see SetMaxLiteralLen).
	ErrOverflow = fmt.Errorf("bignum: literal exceeds maximum length")

	// ErrInvalidNumeral is returned when a decimal string contains a
	// non-digit character where a digit was required, is empty, or is a
	// bare sign with no digits.
	ErrInvalidNumeral = fmt.Errorf("bignum: invalid numeral")

	// ErrDivisionByZero is returned by Div and Rem when the divisor is zero.
	ErrDivisionByZero = fmt.Errorf("bignum: division by zero")

	// ErrAllocationFailure is reserved for the case where the Go runtime
	// can't allocate a value's backing storage. Go surfaces this as a
	// fatal out-of-memory error rather than a recoverable one, so no
	// bignum operation returns it today; it is kept as a sentinel so
	// callers that pattern-match on bignum's four error kinds (see
	// spec.md §3) have a stable symbol to match against.
	ErrAllocationFailure = fmt.Errorf("bignum: allocation failure")
)
