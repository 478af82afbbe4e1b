package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessCode is reported for an operation that did not fail.
	SuccessCode = 0

	// Errors that were not created from a registered error all share
	// this code. Their message is hidden unless debug output is
	// requested.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

// ResultInfo returns the code and the log message that describe the
// outcome of an operation to the caller.
//
// Registered errors report their code and message. Any other error is
// reported as an internal error, with its details only visible in debug
// mode. Debug mode also includes the stack trace.
func ResultInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessCode, ""
	}

	code := codeOf(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalCode:
		return internalCode, internalLog
	default:
		return code, err.Error()
	}
}

type coder interface {
	Code() uint32
}

// codeOf unwraps err until it finds an error that carries a code.
func codeOf(err error) uint32 {
	if isNilErr(err) {
		return SuccessCode
	}
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalCode
}

// Redact hides the details of panics and of errors that were not
// created from a registered error. Other errors are returned unchanged,
// as are all errors in debug mode.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || codeOf(err) == internalCode {
		return errors.New(internalLog)
	}
	return err
}
