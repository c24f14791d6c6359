package internal

import "github.com/pkg/errors"

// Geometry failures are reported through sentinel results, so the only panics
// in the kernel are broken internal invariants such as an unknown curve kind.
// The public API recovers them and hands them back as errors. Any other panic,
// runtime errors included, keeps unwinding.

type ContourError struct {
	err error
}

func (e ContourError) Error() string { return e.err.Error() }
func (e ContourError) Unwrap() error { return e.err }

// Panic with a ContourError.
func fatalf(format string, args ...interface{}) {
	panic(ContourError{errors.Errorf(format, args...)})
}

func HandleContourPanicRecover(r interface{}) error {
	if r != nil {
		if contourError, ok := r.(ContourError); ok {
			return contourError
		}
		panic(r)
	}
	return nil
}
