package langchaingo

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UnknownErrorCode is reported by RenderJSON when the failure carries no code.
const UnknownErrorCode = "UNKNOWN_ERROR"

type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

// Result is the outcome of one tool call before it is rendered.
type Result struct {
	Status  Status
	Message string
	// Code is the machine-readable failure code, when the error had one.
	Code string
	// Data holds extra fields rendered alongside the message in JSON output.
	Data map[string]any
	Err  error
}

func Success(message string, data map[string]any) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// Failure wraps err. The code is taken from the first error in the chain that
// has an ErrorCode method.
func Failure(err error) Result {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result{Status: StatusFailure, Message: err.Error(), Code: errorCode(err), Err: err}
}

func (r Result) Failed() bool {
	return r.Status == StatusFailure
}

func errorCode(err error) string {
	var coded interface{ ErrorCode() string }
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}

// Renderer turns a Result into the tool's output. action names the operation
// in failure text, e.g. "transferring tokens".
type Renderer func(action string, result Result) (string, error)

// RenderText renders success as its message and failure as
// "Error <action>: <message>".
func RenderText(action string, result Result) (string, error) {
	if result.Failed() {
		return fmt.Sprintf("Error %s: %s", action, result.Message), nil
	}
	return result.Message, nil
}

// RenderJSON renders {"status":"success","message":...} plus Data on success
// and {"status":"error","message":...,"code":...} on failure.
func RenderJSON(action string, result Result) (string, error) {
	payload := make(map[string]any, len(result.Data)+3)
	for key, value := range result.Data {
		payload[key] = value
	}

	if result.Failed() {
		code := result.Code
		if code == "" {
			code = UnknownErrorCode
		}
		payload["status"] = "error"
		payload["message"] = result.Message
		payload["code"] = code
	} else {
		payload["status"] = "success"
		payload["message"] = result.Message
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s result: %w", action, err)
	}
	return string(encoded), nil
}

// RenderPropagate renders success as its message and returns failures as the
// Go error.
func RenderPropagate(action string, result Result) (string, error) {
	if result.Failed() {
		return "", result.Err
	}
	return result.Message, nil
}
