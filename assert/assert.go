package assert

import "github.com/oomph-ac/museum/oerror"

// IsTrue panics with a formatted MuseumError if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
