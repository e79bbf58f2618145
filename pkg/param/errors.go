package param

import "errors"

var (
	// ErrInvalidMultiplier indicates the multiplier string is not a
	// decimal numeral or is outside [0.00, 10.00].
	ErrInvalidMultiplier = errors.New("param: invalid multiplier")

	// ErrNoRecords indicates the input text contained no records.
	ErrNoRecords = errors.New("param: no records found")

	// ErrNoTargetColumns indicates none of the target column names
	// matched any field of the header record.
	ErrNoTargetColumns = errors.New("param: none of the target columns were found in the header")
)
