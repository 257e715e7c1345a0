package dataset

import (
	"fmt"

	"github.com/ValentinKolb/pRDD/lib/executor"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCConfig:
		errorCode = "Config"
	case RetCShape:
		errorCode = "Shape"
	case RetCUserFunc:
		errorCode = "UserFunc"
	case RetCCacheProducer:
		errorCode = "CacheProducer"
	case RetCInternalError:
		errorCode = "InternalError"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("DatasetError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Operation executed successfully.
	RetCConfig                       // 1: Invalid configuration value.
	RetCShape                        // 2: Parent datasets have incompatible shapes.
	RetCUserFunc                     // 3: A user-supplied function failed.
	RetCCacheProducer                // 4: Materializing a shared partition failed.
	RetCInternalError                // 5: Operation failed due to an internal error.
)

// --------------------------------------------------------------------------
// Task Error Conversion
// --------------------------------------------------------------------------

// taskError converts an error escaping an action task into a *Error. Panics
// from user functions arrive as *executor.PanicError; errors that are already
// typed pass through unchanged.
func taskError(err error) error {
	if err == nil {
		return nil
	}
	if typed, ok := err.(*Error); ok {
		return typed
	}
	if p, ok := err.(*executor.PanicError); ok {
		if inner := p.Unwrap(); inner != nil {
			if typed, ok := inner.(*Error); ok {
				return typed
			}
		}
		return NewError(RetCUserFunc, p.Error())
	}
	return NewError(RetCInternalError, err.Error())
}
