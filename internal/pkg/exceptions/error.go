package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"scheduling-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// Unwrap exposes the wrapped cause so errors.Is/As see through the client envelope.
func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err with the status and messages returned to the client.
// When err is already a *CustomError it is returned unchanged so the innermost
// classification wins.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	var existing *CustomError
	if err != nil && errors.As(err, &existing) {
		return existing
	}
	if err == nil {
		return newCustomError(nil, statusCode, clientMessage, devMessage, getLocation(3))
	}
	return newCustomError(err, statusCode, clientMessage, fmt.Sprintf("%s: %s", devMessage, err.Error()), getLocation(3))
}

func newCustomError(cause error, statusCode int, clientMessage, devMessage string, location Location) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Success:       false,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		cause:         cause,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
