package oerror

import "fmt"

// MuseumError is an error raised for malformed scenes and for states that should never be reached.
type MuseumError struct {
	Err string
}

// New returns a new MuseumError with the formatted message.
func New(format string, args ...any) *MuseumError {
	return &MuseumError{Err: fmt.Sprintf(format, args...)}
}

func (e *MuseumError) Error() string {
	return "museum: " + e.Err
}
