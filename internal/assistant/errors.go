package assistant

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Category buckets a request failure into the fixed user-facing taxonomy.
// The pipeline itself never fails; only this transport layer does, and every
// failure maps to exactly one category so the chat surface can show a
// consistent message.
type Category string

const (
	// CategoryImageTooLarge: HTTP 413 or a "Request Entity Too Large" body.
	CategoryImageTooLarge Category = "image_too_large"
	// CategoryTimeout: a timeout signal anywhere in the failure (504, or a
	// body/message containing "timeout"/"timed out").
	CategoryTimeout Category = "timeout"
	// CategoryBadPattern: the backend choked on its own query expansion
	// ("Invalid regular expression"/"Unterminated group").
	CategoryBadPattern Category = "bad_pattern"
	// CategoryUploadFailed: the image never made it upstream, so the query
	// was never sent. Not retried.
	CategoryUploadFailed Category = "upload_failed"
	// CategoryUpstream: the backend's explicit {success:false, error}
	// contract; the error text is surfaced verbatim.
	CategoryUpstream Category = "upstream"
	// CategoryGeneric: everything else.
	CategoryGeneric Category = "generic"
)

// userMessages is the fixed category → user-facing text table.
var userMessages = map[Category]string{
	CategoryImageTooLarge: "The image is too large. Please use a smaller image.",
	CategoryTimeout:       "The request timed out. Please try again.",
	CategoryBadPattern:    "The assistant hit a processing error. Please rephrase your question.",
	CategoryUploadFailed:  "Failed to upload image. Please try again.",
	CategoryGeneric:       "Something went wrong talking to the assistant.",
}

// RequestError is a categorized transport failure. The upstream contract
// error (CategoryUpstream) carries the backend's message verbatim; all other
// categories substitute fixed user-facing text.
type RequestError struct {
	operation  string
	category   Category
	statusCode int
	message    string
}

func (e *RequestError) Error() string {
	if e.statusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.operation, e.statusCode, e.message)
	}
	return fmt.Sprintf("%s: %s", e.operation, e.message)
}

// Category returns the failure bucket.
func (e *RequestError) Category() Category { return e.category }

// StatusCode returns the HTTP status, or 0 for non-HTTP failures.
func (e *RequestError) StatusCode() int { return e.statusCode }

// UserMessage returns the text to show the end user. Upstream errors pass
// through verbatim per the backend contract.
func (e *RequestError) UserMessage() string {
	if e.category == CategoryUpstream && e.message != "" {
		return e.message
	}
	if msg, ok := userMessages[e.category]; ok {
		return msg
	}
	return userMessages[CategoryGeneric]
}

func newRequestError(operation string, status int, body string, err error) *RequestError {
	msg := body
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &RequestError{
		operation:  operation,
		category:   categorize(status, msg),
		statusCode: status,
		message:    msg,
	}
}

// categorize maps HTTP-layer signals to the user-facing taxonomy.
func categorize(status int, body string) Category {
	if status == http.StatusRequestEntityTooLarge || strings.Contains(body, "Request Entity Too Large") {
		return CategoryImageTooLarge
	}
	lower := strings.ToLower(body)
	if status == http.StatusGatewayTimeout || strings.Contains(lower, "timed out") || strings.Contains(lower, "timeout") {
		return CategoryTimeout
	}
	if strings.Contains(body, "Invalid regular expression") || strings.Contains(body, "Unterminated group") {
		return CategoryBadPattern
	}
	return CategoryGeneric
}

// HasCategory reports whether err is a request error in the given category.
func HasCategory(err error, c Category) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.category == c
}

// IsTimeout reports whether err is a timeout-category request error.
func IsTimeout(err error) bool { return HasCategory(err, CategoryTimeout) }

// IsImageTooLarge reports whether err is an image-too-large request error.
func IsImageTooLarge(err error) bool { return HasCategory(err, CategoryImageTooLarge) }

// IsUploadFailure reports whether err is a failed image upload.
func IsUploadFailure(err error) bool { return HasCategory(err, CategoryUploadFailed) }
