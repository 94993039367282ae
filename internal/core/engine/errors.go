package engine

import "fmt"

// ErrorCode is the engine-level error taxonomy surfaced to callers.
type ErrorCode int

const (
	CodeNotConnected ErrorCode = iota
	CodeAlreadyConnecting
	CodeMessageNotFound
	CodeInvalidArgument
	CodeExportFailed
	CodeConversionFailed
)

func (c ErrorCode) String() string {
	switch c {
	case CodeNotConnected:
		return "not connected"
	case CodeAlreadyConnecting:
		return "already connecting"
	case CodeMessageNotFound:
		return "message not found"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeExportFailed:
		return "export failed"
	case CodeConversionFailed:
		return "conversion failed"
	default:
		return "unknown"
	}
}

// Error is a typed engine error. errors.Is matches on the code, so wrapped
// errors still compare against the sentinels below.
type Error struct {
	Code  ErrorCode
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrNotConnected      = &Error{Code: CodeNotConnected}
	ErrAlreadyConnecting = &Error{Code: CodeAlreadyConnecting}
	ErrMessageNotFound   = &Error{Code: CodeMessageNotFound}
	ErrInvalidArgument   = &Error{Code: CodeInvalidArgument}
	ErrExportFailed      = &Error{Code: CodeExportFailed}
)

func newNotConnected(id string) error {
	return &Error{Code: CodeNotConnected, Msg: fmt.Sprintf("connection %q", id)}
}

func newAlreadyConnecting(id string) error {
	return &Error{Code: CodeAlreadyConnecting, Msg: fmt.Sprintf("connection %q", id)}
}

func newMessageNotFound(queue, hexID string) error {
	return &Error{Code: CodeMessageNotFound, Msg: fmt.Sprintf("message %s on queue %q", hexID, queue)}
}

func newInvalidArgument(msg string) error {
	return &Error{Code: CodeInvalidArgument, Msg: msg}
}
