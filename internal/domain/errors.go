package domain

import (
	"errors"
	"fmt"
)

// ErrBatchTimeout is returned when a batch of page fetches does not
// complete within the configured wait window. It aborts the whole
// collection; there is no retry.
var ErrBatchTimeout = errors.New("timed out waiting for page fetch batch")

// InvalidURLError reports a caller-supplied URL that does not name a
// business profile on the review site.
type InvalidURLError struct {
	Reason string
}

func (e *InvalidURLError) Error() string {
	return "invalid input url for scraping: " + e.Reason
}

// CommunicationError reports a non-200 response from the review site.
// Body holds a bounded excerpt of the raw response for diagnostics.
type CommunicationError struct {
	StatusCode int
	Body       string
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("review site responded %d", e.StatusCode)
}

// FieldNotFoundError reports a review fragment missing the element a
// field is extracted from.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find %s element", e.Field)
}

// FieldUnparseableError reports a located field whose text content does
// not match the expected shape.
type FieldUnparseableError struct {
	Field string
}

func (e *FieldUnparseableError) Error() string {
	return fmt.Sprintf("couldn't parse %s text content", e.Field)
}
