package inventory

import (
	"fmt"

	"github.com/hostinfo/hostwiki/internal/errors"
)

// ErrEmptyResponse is the cause of an UnreachableError when the service answered with no data.
var ErrEmptyResponse = errors.New("inventory returned an empty response")

// StatusError is the cause of an UnreachableError when the service answered with a non-2xx status.
type StatusError struct {
	Status string
}

func (err StatusError) Error() string {
	return "unexpected status " + err.Status
}

// UnreachableError is returned when the inventory could not be read.
type UnreachableError struct {
	Err error
	URL string
}

func (err UnreachableError) Error() string {
	return fmt.Sprintf("hostinfo details (%s) couldn't be read: %v", err.URL, err.Err)
}

func (err UnreachableError) Unwrap() error {
	return err.Err
}

// WikiMessage is the text shown on the page in place of the markup.
func (err UnreachableError) WikiMessage() string {
	return fmt.Sprintf("ERROR: hostinfo details (%s) couldn't be read", err.URL)
}

// NewUnreachableError creates a new UnreachableError.
func NewUnreachableError(url string, err error) error {
	return errors.New(UnreachableError{URL: url, Err: err})
}
