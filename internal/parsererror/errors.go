// Package parsererror defines the error kinds reported by a conversion.
package parsererror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Typed errors below match them through errors.Is.
var (
	ErrNoInputFound      = errors.New("no input files found")
	ErrUnsupportedSchema = errors.New("unsupported schema")
	ErrMalformedDocument = errors.New("malformed document")
	ErrWriteFailure      = errors.New("write failure")
)

// UnsupportedSchemaError reports a filename whose prefix selects no variant.
type UnsupportedSchemaError struct {
	Stem   string
	Prefix string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("unsupported file type %q (prefix %q): expected a name starting with comissao_ or vales_",
		e.Stem, e.Prefix)
}

func (e *UnsupportedSchemaError) Is(target error) bool {
	return target == ErrUnsupportedSchema
}

// MalformedDocumentError reports XML that is not well-formed or lacks a
// required element.
type MalformedDocumentError struct {
	Variant string
	// Field is the path of the missing element, e.g. "Empresa/CNPJ".
	// Empty when the document could not be decoded at all.
	Field string
	Err   error
}

func (e *MalformedDocumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed %s document: missing required element %s", e.Variant, e.Field)
	}
	return fmt.Sprintf("malformed %s document: %v", e.Variant, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// SchemaMismatchError reports a well-formed document whose root element does
// not match the variant selected from its filename.
type SchemaMismatchError struct {
	Expected string
	// Found is the root element actually present, or "" if it is not one of
	// the supported roots.
	Found string
}

func (e *SchemaMismatchError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("document root is not <%s> as required by the file name", e.Expected)
	}
	return fmt.Sprintf("file name selects <%s> but the document root is <%s>", e.Expected, e.Found)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// WriteError reports that the CSV destination could not be created or fully
// written.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}

// NoInputError reports that no candidate file matched in a directory.
type NoInputError struct {
	Directory string
	Pattern   string
}

func (e *NoInputError) Error() string {
	return fmt.Sprintf("no files matching %s in %s", e.Pattern, e.Directory)
}

func (e *NoInputError) Is(target error) bool {
	return target == ErrNoInputFound
}

// Kind returns the sentinel matching err, or nil when err is not one of the
// known kinds.
func Kind(err error) error {
	for _, kind := range []error{ErrNoInputFound, ErrUnsupportedSchema, ErrMalformedDocument, ErrWriteFailure} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
