package cmperrors

import "errors"

// retryableError is implemented by every error type in this package.
type retryableError interface {
	error
	Retryable() bool
}

// IsRetryable reports whether err (or any error in its chain) is eligible
// for the retry wrapper. Errors that do not implement retryableError are
// treated as not retryable.
func IsRetryable(err error) bool {
	var re retryableError
	if errors.As(err, &re) {
		return re.Retryable()
	}
	return false
}
