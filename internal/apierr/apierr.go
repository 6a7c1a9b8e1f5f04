// Package apierr carries request failures from any pipeline stage to the
// HTTP boundary as a status code plus a JSON body.
package apierr

import (
	"errors"
	"net/http"
)

// Message is the body shape shared by every non-field failure.
type Message struct {
	Message string `json:"message"`
}

// Error pairs an HTTP status with the body rendered for it. Body is either
// a Message or a map of field name to messages.
type Error struct {
	Status int
	Body   any
}

func (e *Error) Error() string {
	switch b := e.Body.(type) {
	case Message:
		return b.Message
	case map[string][]string:
		return "invalid fields"
	default:
		return http.StatusText(e.Status)
	}
}

func New(status int, message string) *Error {
	return &Error{Status: status, Body: Message{Message: message}}
}

// Fields builds a 400 failure listing messages per offending field.
func Fields(fields map[string][]string) *Error {
	return &Error{Status: http.StatusBadRequest, Body: fields}
}

// As reports whether err is (or wraps) an *Error and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
