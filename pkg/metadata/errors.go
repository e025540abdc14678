package metadata

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// InvalidDescriptorCode tags strict-mode failures caused by a descriptor
	// that could not be decoded.
	InvalidDescriptorCode = "INVALID_DESCRIPTOR"
	// InvalidObjectCode tags object identifiers that would escape the
	// objects root.
	InvalidObjectCode = "INVALID_OBJECT"
)

// ErrDirectoryMissing marks a base, objects root or descriptor directory that
// does not exist. Resolvers recover from it locally and report no candidates.
var ErrDirectoryMissing = errors.New("metadata: directory missing")

// InvalidDescriptorError reports a descriptor file that exists but is not
// parseable XML.
type InvalidDescriptorError struct {
	Path string
	Err  error
}

func (e *InvalidDescriptorError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("metadata: invalid descriptor %s", e.Path)
	}
	return fmt.Sprintf("metadata: invalid descriptor %s: %v", e.Path, e.Err)
}

func (e *InvalidDescriptorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsInvalidDescriptor reports whether err carries an InvalidDescriptorError.
func IsInvalidDescriptor(err error) bool {
	var target *InvalidDescriptorError
	return errors.As(err, &target)
}

// WrapInvalidDescriptor classifies a descriptor failure for callers that
// abort on it. Errors already wrapped by go-errors pass through unchanged.
func WrapInvalidDescriptor(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "descriptor could not be parsed").
		WithTextCode(InvalidDescriptorCode)
}

// WrapInvalidObject classifies an object identifier rejected by a resolver.
func WrapInvalidObject(object string) error {
	return goerrors.Wrap(fmt.Errorf("metadata: invalid object identifier %q", object),
		goerrors.CategoryValidation, "object identifier rejected").
		WithTextCode(InvalidObjectCode)
}

// NoDocumentationError is the advisory raised when an object yields neither
// fields nor active rules. It is collected, never returned.
type NoDocumentationError struct {
	Object string `json:"object"`
}

func (e NoDocumentationError) Error() string {
	return fmt.Sprintf("metadata: no documentation found for %s", e.Object)
}
