package errors

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrDiscovery marks a failure to read the sitemap. It aborts the whole audit.
	ErrDiscovery = errors.New("candidate discovery failed")
	// ErrHTTPStatus matches every StatusError.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// StatusError reports a response whose status code is 400 or above.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// New creates a new instance of the base error
func New(msg string) error {
	return fmt.Errorf("%s: %s", msg, filePath())
}

// Wrap creates a new error of the wrapped error
func Wrap(err error, msg string) error {
	return fmt.Errorf("%s %s \ncaused by: %w", msg, filePath(), err)
}

// Is checks if the error is equal to the target
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As returns the wrapped error
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join combines errors so both stay matchable with Is.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Cause returns the innermost error of a Wrap/Errorf chain.
func Cause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

func Errorf(format string, args ...interface{}) error {
	args = append(args, filePath())
	return fmt.Errorf(format+` %s`, args...)
}

func filePath() string {
	pc, f, l, ok := runtime.Caller(2)
	fn := `unknown`
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	return fmt.Sprintf("at %s\n\t%s:%d", fn, f, l)
}
