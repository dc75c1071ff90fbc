// Package common defines shared sentinel errors used across the survey
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote I/O errors.
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrServerReported    = errors.New("server reported error")

	// Submission flow errors.
	ErrDuplicateEntry    = errors.New("duplicate phone number")
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrPartialSubmit means the entry is durably cached locally but the
	// remote write did not succeed. A warning, not a hard failure.
	ErrPartialSubmit = errors.New("entry cached locally but not submitted")

	// ErrPersistence means the local cache write failed. Logged only, never
	// surfaced: the in-memory collection stays authoritative for the session.
	ErrPersistence = errors.New("local persistence failed")

	// ErrNoData is returned by exports when there is nothing to write.
	ErrNoData = errors.New("no data")
)
