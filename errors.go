package tether

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrSourceUnavailable reports that a source could not be read, typically
	// because it vanished between the existence check and the read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse failed")

	// ErrSubscribe reports that the filesystem watch could not be established.
	ErrSubscribe = errors.New("watch subscription failed")

	// ErrListenerType reports a watch strategy whose listeners expect a different
	// type than the loader produces.
	ErrListenerType = errors.New("listener type does not match loader type")
)

// ParseError is returned when a Codec rejects the content of a source.
type ParseError struct {
	Source      string
	ContentType string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s (%s): %v", e.Source, e.ContentType, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers can use errors.Is without a type assertion.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConstructionError is returned by New when a source that exists cannot be
// loaded or watched. An unparseable initial source is fatal.
type ConstructionError struct {
	Source string
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// unavailable wraps a read failure with ErrSourceUnavailable.
func unavailable(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
}

// decode runs codec over data and wraps a failure as a *ParseError.
// An empty payload is always a failure: a file truncated by an in-place write
// is read as empty before the new content lands.
func decode(codec Codec, source string, data []byte, v any) error {
	// Resolve auto detection up front so the error names the real format.
	if _, ok := codec.(AutoCodec); ok {
		codec = detect(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &ParseError{Source: source, ContentType: codec.ContentType(), Err: io.ErrUnexpectedEOF}
	}
	if err := codec.Unmarshal(data, v); err != nil {
		return &ParseError{Source: source, ContentType: codec.ContentType(), Err: err}
	}
	return nil
}

// failureStage names the reload stage an error came from, for signals and metrics.
func failureStage(err error) string {
	if errors.Is(err, ErrParse) {
		return "parse"
	}
	return "read"
}
