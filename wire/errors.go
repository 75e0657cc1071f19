package wire

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// The error taxonomy is flat and closed: every public operation either
// returns a decoded success value or exactly one of the error kinds below.
// None are retried by this package.

// InvalidURLError means the server address could not be turned into a
// request URL. Nothing was sent.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid server URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// NoSessionIDError means a session-scoped command was attempted with no
// active session. It is a programming error on the caller's side, raised
// before any network call.
type NoSessionIDError struct {
	Path string
}

func (e *NoSessionIDError) Error() string {
	return fmt.Sprintf("no session id set for session-scoped command %q", e.Path)
}

// BadJSONError means a response body could not be decoded into the
// expected shape.
type BadJSONError struct {
	Err  error
	Body []byte
}

func (e *BadJSONError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

func (e *BadJSONError) Unwrap() error { return e.Err }

// HTTPStatusError means the server answered with a status code outside the
// protocol's known success and failure set. It carries the literal status
// line and body text.
type HTTPStatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unknown HTTP status %q: %s", e.Status, e.Body)
}

// ConnError means the HTTP exchange never completed; no response was
// obtained from the server.
type ConnError struct {
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connecting to automation server: %v", e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// UnknownCommandError means the server rejected the request path or method
// as unrecognized.
type UnknownCommandError struct {
	Method  string
	Path    string
	Message string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("server does not recognize command %s %s: %s", e.Method, e.Path, e.Message)
}

// ServerError is a generic server-side fault that doesn't fit the
// structured failed-command shape.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

// FailedCommandError is a structured, typed command failure reported by the
// server.
type FailedCommandError struct {
	Type FailedCommandType
	Info FailedCommandInfo
}

func (e *FailedCommandError) Error() string {
	return fmt.Sprintf("command failed (%s): %s", e.Type, e.Info.Message)
}

// FailedCommandType classifies a structured command failure. The numeric
// codes are fixed by the wire protocol; a code missing from the lookup
// table classifies as FailedUnknownError rather than failing the
// classifier.
type FailedCommandType int

const (
	FailedUnknownError FailedCommandType = iota
	FailedNoSuchDriver
	FailedNoSuchElement
	FailedNoSuchFrame
	FailedUnknownCommand
	FailedStaleElementReference
	FailedElementNotVisible
	FailedInvalidElementState
	FailedElementIsNotSelectable
	FailedJavaScriptError
	FailedXPathLookupError
	FailedTimeout
	FailedNoSuchWindow
	FailedInvalidCookieDomain
	FailedUnableToSetCookie
	FailedUnexpectedAlertOpen
	FailedNoAlertOpen
	FailedScriptTimeout
	FailedInvalidElementCoordinates
	FailedIMENotAvailable
	FailedIMEEngineActivationFailed
	FailedInvalidSelector
	FailedSessionNotCreated
	FailedMoveTargetOutOfBounds
)

var failedCommandCodes = map[int]FailedCommandType{
	6:  FailedNoSuchDriver,
	7:  FailedNoSuchElement,
	8:  FailedNoSuchFrame,
	9:  FailedUnknownCommand,
	10: FailedStaleElementReference,
	11: FailedElementNotVisible,
	12: FailedInvalidElementState,
	13: FailedUnknownError,
	15: FailedElementIsNotSelectable,
	17: FailedJavaScriptError,
	19: FailedXPathLookupError,
	21: FailedTimeout,
	23: FailedNoSuchWindow,
	24: FailedInvalidCookieDomain,
	25: FailedUnableToSetCookie,
	26: FailedUnexpectedAlertOpen,
	27: FailedNoAlertOpen,
	28: FailedScriptTimeout,
	29: FailedInvalidElementCoordinates,
	30: FailedIMENotAvailable,
	31: FailedIMEEngineActivationFailed,
	32: FailedInvalidSelector,
	33: FailedSessionNotCreated,
	34: FailedMoveTargetOutOfBounds,
}

// failedCommandTypeFor maps a server error code onto a failure type.
func failedCommandTypeFor(code int) FailedCommandType {
	if t, ok := failedCommandCodes[code]; ok {
		return t
	}
	return FailedUnknownError
}

var failedCommandNames = [...]string{
	FailedUnknownError:              "unknown error",
	FailedNoSuchDriver:              "no such driver",
	FailedNoSuchElement:             "no such element",
	FailedNoSuchFrame:               "no such frame",
	FailedUnknownCommand:            "unknown command",
	FailedStaleElementReference:     "stale element reference",
	FailedElementNotVisible:         "element not visible",
	FailedInvalidElementState:       "invalid element state",
	FailedElementIsNotSelectable:    "element is not selectable",
	FailedJavaScriptError:           "javascript error",
	FailedXPathLookupError:          "xpath lookup error",
	FailedTimeout:                   "timeout",
	FailedNoSuchWindow:              "no such window",
	FailedInvalidCookieDomain:       "invalid cookie domain",
	FailedUnableToSetCookie:         "unable to set cookie",
	FailedUnexpectedAlertOpen:       "unexpected alert open",
	FailedNoAlertOpen:               "no alert open",
	FailedScriptTimeout:             "script timeout",
	FailedInvalidElementCoordinates: "invalid element coordinates",
	FailedIMENotAvailable:           "ime not available",
	FailedIMEEngineActivationFailed: "ime engine activation failed",
	FailedInvalidSelector:           "invalid selector",
	FailedSessionNotCreated:         "session not created",
	FailedMoveTargetOutOfBounds:     "move target out of bounds",
}

var failedCommandTypeCodes = [...]int{
	FailedUnknownError:              13,
	FailedNoSuchDriver:              6,
	FailedNoSuchElement:             7,
	FailedNoSuchFrame:               8,
	FailedUnknownCommand:            9,
	FailedStaleElementReference:     10,
	FailedElementNotVisible:         11,
	FailedInvalidElementState:       12,
	FailedElementIsNotSelectable:    15,
	FailedJavaScriptError:           17,
	FailedXPathLookupError:          19,
	FailedTimeout:                   21,
	FailedNoSuchWindow:              23,
	FailedInvalidCookieDomain:       24,
	FailedUnableToSetCookie:         25,
	FailedUnexpectedAlertOpen:       26,
	FailedNoAlertOpen:               27,
	FailedScriptTimeout:             28,
	FailedInvalidElementCoordinates: 29,
	FailedIMENotAvailable:           30,
	FailedIMEEngineActivationFailed: 31,
	FailedInvalidSelector:           32,
	FailedSessionNotCreated:         33,
	FailedMoveTargetOutOfBounds:     34,
}

func (t FailedCommandType) String() string {
	if int(t) < len(failedCommandNames) {
		return failedCommandNames[t]
	}
	return fmt.Sprintf("failed command type %d", int(t))
}

// Code returns the protocol's numeric status code for t.
func (t FailedCommandType) Code() int {
	if int(t) < len(failedCommandTypeCodes) {
		return failedCommandTypeCodes[t]
	}
	return failedCommandTypeCodes[FailedUnknownError]
}

// StackFrame is one frame of a server-reported stack trace.
type StackFrame struct {
	FileName   string `json:"fileName"`
	ClassName  string `json:"className"`
	MethodName string `json:"methodName"`
	LineNumber int    `json:"lineNumber"`
}

// FailedCommandInfo carries the structured context of a failed command.
//
// SessionID is always the id of the session that actually issued the
// command; the classifier overwrites it so that error context reflects the
// caller. ServerSessionID preserves whatever id the server itself reported,
// which may differ or be absent.
type FailedCommandInfo struct {
	Message         string
	SessionID       string
	ServerSessionID null.String
	Screenshot      []byte
	Class           null.String
	StackTrace      []StackFrame
}

func (i *FailedCommandInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Message    *string      `json:"message"`
		Screen     *string      `json:"screen"`
		Class      *string      `json:"class"`
		StackTrace []StackFrame `json:"stackTrace"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding failed-command info: %w", err)
	}
	// An absent message is an empty string, not an error.
	if raw.Message != nil {
		i.Message = *raw.Message
	}
	if raw.Screen != nil {
		b, err := base64.StdEncoding.DecodeString(*raw.Screen)
		if err != nil {
			return fmt.Errorf("decoding failure screenshot: %w", err)
		}
		i.Screenshot = b
	}
	i.Class = null.StringFromPtr(raw.Class)
	i.StackTrace = raw.StackTrace
	return nil
}
