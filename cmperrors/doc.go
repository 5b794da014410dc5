// Package cmperrors provides structured error types for the TR-181
// extraction, validation, and comparison pipeline.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ConnectionError: transport connect/establish failures (retryable)
//   - AuthenticationError: credential rejection (not retryable)
//   - TimeoutError: deadline exceeded (retryable)
//   - ProtocolError: malformed or unexpected transport response
//   - ValidationError: declared structure violations (not retryable)
//   - ConfigurationError: invalid factory/loader configuration (fatal)
//
// # Usage with errors.As
//
//	nodes, _, err := extractor.Extract(ctx)
//	if err != nil {
//	    var connErr *cmperrors.ConnectionError
//	    if errors.As(err, &connErr) {
//	        if connErr.Retryable() {
//	            // retry through the resilience layer
//	        }
//	    }
//	}
package cmperrors
