// Package bridge implements the lossless A2A ↔ Frame mapping (spec
// §4.5 "A2A ↔ Frame bridge"): A2A messages and tasks travel as a small
// JSON envelope inside a frame payload, tagged with the A2A method
// that produced them.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/Zameneing/mxp-go/a2a"
	"github.com/Zameneing/mxp-go/frame"
)

// Method names carried in the envelope's "method" field.
const (
	MethodMessageSend   = "message/send"
	MethodMessageStream = "message/stream"
	MethodTasksSend     = "tasks/send"
	MethodTasksGet      = "tasks/get"
	MethodTasksCancel   = "tasks/cancel"
)

// EnvelopeError is the shape of a bridging error, carried in an Error
// frame's envelope as `{"error": {...}}`.
type EnvelopeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("bridge: [%d] %s", e.Code, e.Message)
}

// envelope is the wire shape carried as a frame's JSON payload.
type envelope struct {
	Method  string         `json:"method,omitempty"`
	Message *a2a.Message   `json:"message,omitempty"`
	Task    *a2a.Task      `json:"task,omitempty"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

// Result is what FromMXP returns: the inferred method, whichever of
// Message/Task was present, and the raw payload bytes (so callers
// needing the original text, e.g. a stream chunk, are never forced
// through the envelope).
type Result struct {
	Method     string
	Message    *a2a.Message
	Task       *a2a.Task
	RawPayload []byte
}

// ErrMalformedEnvelope is returned when a frame payload is not a valid
// bridge envelope.
var ErrMalformedEnvelope = fmt.Errorf("bridge: malformed envelope")

// ToMXP encodes msg as a Call frame carrying a message/send envelope.
func ToMXP(msg a2a.Message) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: MethodMessageSend, Message: &msg})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Call(payload), nil
}

// ToMXPResponse answers cause with a Response frame carrying msg,
// tagged with method (spec §4.5's response side of the kind mapping).
func ToMXPResponse(method string, msg a2a.Message, cause frame.Frame) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: method, Message: &msg})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Response(payload, cause), nil
}

// ToMXPTask encodes task as a Call frame tagged with one of
// tasks/send, tasks/get, tasks/cancel.
func ToMXPTask(method string, task *a2a.Task) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: method, Task: task})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Call(payload), nil
}

// ToMXPTaskResponse answers cause with a Response frame carrying task.
func ToMXPTaskResponse(method string, task *a2a.Task, cause frame.Frame) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: method, Task: task})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Response(payload, cause), nil
}

// ToMXPError builds an Error frame correlated to cause, carrying a
// structured {"error": {code, message}} envelope.
func ToMXPError(code int, message string, cause frame.Frame) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Error: &EnvelopeError{Code: code, Message: message}})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.Error(payload, cause), nil
}

// ToMXPStreamOpen opens a stream carrying msg's first chunk of
// content as a message/stream envelope. The returned frame's
// MessageID is the stream identifier for the stream's lifetime.
func ToMXPStreamOpen(msg a2a.Message) (frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: MethodMessageStream, Message: &msg})
	if err != nil {
		return frame.Frame{}, err
	}
	return frame.StreamOpen(payload), nil
}

// ToMXPStreamChunk emits one chunk of the stream opened by open. Chunk
// payloads are raw UTF-8 text, not a JSON envelope (spec §4.5).
func ToMXPStreamChunk(text string, open frame.Frame) frame.Frame {
	return frame.StreamChunk([]byte(text), open)
}

// ToMXPStreamClose closes the stream opened by open.
func ToMXPStreamClose(open frame.Frame) frame.Frame {
	return frame.StreamClose(open)
}

// FromMXP parses f's payload into a Result, inferring the A2A method
// from the frame kind when the envelope omits one (spec §4.5).
func FromMXP(f frame.Frame) (*Result, error) {
	if f.Kind == frame.KindStreamChunk {
		return &Result{Method: MethodMessageStream, RawPayload: f.Payload}, nil
	}

	var env envelope
	if len(f.Payload) > 0 {
		if err := json.Unmarshal(f.Payload, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
		}
	}

	if env.Error != nil {
		return nil, env.Error
	}

	method := env.Method
	if method == "" {
		method = inferMethod(f.Kind)
	}

	return &Result{
		Method:     method,
		Message:    env.Message,
		Task:       env.Task,
		RawPayload: f.Payload,
	}, nil
}

func inferMethod(kind frame.Kind) string {
	switch kind {
	case frame.KindStreamOpen, frame.KindStreamChunk, frame.KindStreamClose:
		return MethodMessageStream
	default:
		return MethodMessageSend
	}
}
