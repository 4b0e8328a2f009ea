package exceptions

import (
	"errors"
	"fmt"
	"mrn-validator-service/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a CustomError into the lookup error taxonomy.
type Kind string

const (
	KindUnknown                 Kind = ""
	KindAuthMissing             Kind = "AuthError.Missing"
	KindAuthMismatch            Kind = "AuthError.Mismatch"
	KindParseUnsupportedAction  Kind = "ParseError.UnsupportedAction"
	KindParseEmptyMrnList       Kind = "ParseError.EmptyMrnList"
	KindTokenUnavailable        Kind = "TokenError.Unavailable"
	KindClientBadStatus         Kind = "ClientError.BadStatus"
	KindClientMalformedResponse Kind = "ClientError.MalformedResponse"
	KindClientTransport         Kind = "ClientError.Transport"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Kind          Kind     `json:"-"`
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

func (e *CustomError) Unwrap() error {
	return e.cause
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
		cause:         err,
	}
}

// BuildNewCustomError wraps err when present and records the caller of the
// constructor as the error location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		customErr.cause = err
	}
	return customErr
}

func (e *CustomError) withKind(kind Kind) *CustomError {
	e.Kind = kind
	return e
}

// KindOf returns the taxonomy kind of err, or KindUnknown when err is not a CustomError.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindUnknown
}

// StatusCodeOf returns the HTTP status carried by err, defaulting to 500.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.StatusCode != 0 {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
