package scenario

import (
	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
)

// Threading errors through every little coordinate parser would bury the
// parsing logic. Instead, parsers panic with a ParseError, and the public
// loaders recover to convert it to an error.

// ParseError is a malformed scenario file.
type ParseError struct {
	err error
}

func (e *ParseError) Error() string { return e.err.Error() }
func (e *ParseError) Cause() error  { return e.err }
func (e *ParseError) Unwrap() error { return e.err }

// Panic with a ParseError.
func fatalf(format string, args ...interface{}) {
	panic(&ParseError{errors.Errorf(format, args...)})
}

// Converts a recovered ParseError back into an error. Anything else is a real
// panic and is raised again.
func handleParsePanicRecover(r interface{}) error {
	if r != nil {
		if parseError, ok := r.(*ParseError); ok {
			polyclip.Logger().Warn("scenario: parse failed", "err", parseError)
			return parseError
		}
		panic(r)
	}
	return nil
}
