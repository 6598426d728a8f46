package symbol

import "errors"

// Domain errors for symbolic coercion and parsing.
var (
	// ErrSympify indicates a value that cannot be interpreted as a
	// symbolic scalar expression.
	ErrSympify = errors.New("symbol: value is not sympifiable")

	// ErrParse indicates a malformed expression string.
	ErrParse = errors.New("symbol: cannot parse expression")

	// ErrDivisionByZero indicates an exact division by a zero constant.
	ErrDivisionByZero = errors.New("symbol: division by zero")

	// ErrNotFinite indicates a float with no exact rational value, such as
	// NaN or an infinity.
	ErrNotFinite = errors.New("symbol: float is not finite")
)
