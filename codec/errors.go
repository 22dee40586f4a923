// Package codec converts between raw graph elements and chemistry entities.
//
// Reading, it classifies each node by its label and each relationship by its type, decodes
// it into exactly one entity together with the Identity needed to correlate it with the
// rest of the query result, and joins relationships to their nodes into aggregates.
// Writing, it projects entities into the property masks used by write queries.
//
// Every failure is a *ParsingError. Nothing here performs I/O or holds state, so all
// functions are safe for concurrent use.
package codec

import (
	"errors"
	"fmt"
)

// ErrParsing matches any *ParsingError with errors.Is.
var ErrParsing = errors.New("parsing error")

// ParsingError reports a graph element that cannot be turned into the requested entity:
// wrong labels, unknown relationship type, missing property, badly shaped value, or a
// relationship that correlates with no node.
type ParsingError struct {
	Message string
}

func (e *ParsingError) Error() string {
	return "parsing error: " + e.Message
}

// Is makes errors.Is(err, ErrParsing) hold for every ParsingError.
func (e *ParsingError) Is(target error) bool {
	return target == ErrParsing
}

func parsingErrorf(format string, args ...any) error {
	return &ParsingError{Message: fmt.Sprintf(format, args...)}
}

// withContext prefixes the message of a ParsingError; other errors pass through.
func withContext(err error, format string, args ...any) error {
	var pe *ParsingError
	if errors.As(err, &pe) {
		return &ParsingError{Message: fmt.Sprintf(format, args...) + ": " + pe.Message}
	}
	return err
}
