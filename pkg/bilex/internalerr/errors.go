package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnbalancedBracket = errors.New("unbalanced bracket")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrLanguageMismatch  = errors.New("language not in declared pair")
)
