package store

import "fmt"

// ParseError reports a row in the backing file that failed to decode.
// The whole load aborts on the first one; operating on a partially
// decoded log would risk reassigning ids that are already taken.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type NotFoundError struct {
	ID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("message not found: %d", e.ID)
}

type InvalidReferenceError struct {
	ID int
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("reply target not found: >>%d", e.ID)
}
