package criteria

import (
	"fmt"
	"strings"

	"github.com/hostinfo/hostwiki/internal/errors"
)

// WikiMessenger is implemented by errors that have a fixed text to show on the wiki page in place of content.
type WikiMessenger interface {
	WikiMessage() string
}

// MissingKindAttributeError is returned when the tag has no `type` attribute.
type MissingKindAttributeError struct {
	Tag string
}

func (err MissingKindAttributeError) Error() string {
	return fmt.Sprintf("<%s> tag is missing '%s' attribute", err.Tag, AttrType)
}

// WikiMessage implements WikiMessenger.
func (err MissingKindAttributeError) WikiMessage() string {
	return fmt.Sprintf("ERROR: <%s> tag is missing '%s' attribute.", err.Tag, AttrType)
}

// NewMissingKindAttributeError creates a new MissingKindAttributeError.
func NewMissingKindAttributeError(tag string) error {
	return errors.New(MissingKindAttributeError{Tag: tag})
}

// UnknownRequestKindError is returned when the `type` attribute holds an unsupported kind.
type UnknownRequestKindError struct {
	Kind string
}

func (err UnknownRequestKindError) Error() string {
	names := make([]string, len(Kinds))
	for i, kind := range Kinds {
		names[i] = kind.String()
	}

	return fmt.Sprintf("unknown type %q, supported types: %s", err.Kind, strings.Join(names, ", "))
}

// WikiMessage implements WikiMessenger.
func (err UnknownRequestKindError) WikiMessage() string {
	return fmt.Sprintf("Error unknown type %s.", err.Kind)
}

// NewUnknownRequestKindError creates a new UnknownRequestKindError.
func NewUnknownRequestKindError(kind string) error {
	return errors.New(UnknownRequestKindError{Kind: kind})
}

// UnknownQualifierError is returned by the decoder for a segment that matches no operator.
type UnknownQualifierError struct {
	Segment string
}

func (err UnknownQualifierError) Error() string {
	return "unknown qualifier " + err.Segment
}

// NewUnknownQualifierError creates a new UnknownQualifierError.
func NewUnknownQualifierError(segment string) error {
	return errors.New(UnknownQualifierError{Segment: segment})
}

// UnknownPathError is returned by ParseTarget for a path that no kind produces.
type UnknownPathError struct {
	Path string
}

func (err UnknownPathError) Error() string {
	return "path does not belong to any request kind: " + err.Path
}

// NewUnknownPathError creates a new UnknownPathError.
func NewUnknownPathError(path string) error {
	return errors.New(UnknownPathError{Path: path})
}
