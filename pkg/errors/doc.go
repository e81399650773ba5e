// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "no kitchen registered for cuisine",
//	    cause,
//	    map[string]any{
//	        "cuisine": "thai",
//	    },
//	)
//
// Callers branch on the code rather than the message:
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // respond with 404
//	}
package errors
