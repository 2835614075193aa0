package httputil

import "errors"

var (
	// ErrInvalidBody covers every parse failure the client cannot fix
	// from the error alone. The details are in the log, keyed by the
	// request ID.
	ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

	// ErrRequestBodyEmpty is returned when a request body is required
	// but missing.
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")

	// ErrInvalidUUID is returned when a resource ID does not parse.
	ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")
)
