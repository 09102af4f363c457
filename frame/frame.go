package frame

import "fmt"

// Version is the only wire version this codec speaks.
const Version uint8 = 1

// MaxPayloadSize is the largest payload a frame may carry (spec §3/§6.1).
const MaxPayloadSize = 16 * 1024 * 1024 // 16 MiB

// Frame is an immutable-at-send MXP message: a 64-byte header plus an
// arbitrary payload. Once built it is encoded once, sent once, and
// discarded — frame values are not meant to be mutated after
// construction (see spec §3 "Lifecycle").
type Frame struct {
	Version       uint8
	Kind          Kind
	Flags         Flags
	Priority      uint8
	MessageID     uint64
	TraceID       uint64
	CorrelationID uint64
	Payload       []byte
}

// IsStreaming reports whether the frame belongs to a stream
// (StreamOpen, StreamChunk, or StreamClose).
func (f Frame) IsStreaming() bool {
	switch f.Kind {
	case KindStreamOpen, KindStreamChunk, KindStreamClose:
		return true
	default:
		return false
	}
}

// RequiresResponse reports whether the sender expects a correlated
// reply (Call and Ping).
func (f Frame) RequiresResponse() bool {
	switch f.Kind {
	case KindCall, KindPing:
		return true
	default:
		return false
	}
}

// Validate checks the invariants spec §3 places on a frame that is
// about to be encoded: version pin, correlation requirements, and
// payload size.
func (f Frame) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Payload) > MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadLengthOverflow, len(f.Payload))
	}
	switch f.Kind {
	case KindResponse, KindError, KindPong, KindStreamChunk, KindStreamClose:
		if f.CorrelationID == 0 {
			return fmt.Errorf("frame: %s frame requires a non-zero correlation_id", f.Kind)
		}
	}
	return nil
}

// newBase builds the fields common to every factory helper: a fresh
// message id and, when derived from a cause frame, the cause's trace
// id (otherwise a fresh one — spec §3/§4.3).
func newBase(kind Kind, cause *Frame) Frame {
	f := Frame{
		Version:   Version,
		Kind:      kind,
		MessageID: NewID(),
	}
	if cause != nil {
		f.TraceID = cause.TraceID
	} else {
		f.TraceID = NewID()
	}
	return f
}

// Call builds a Call frame (correlation_id 0).
func Call(payload []byte) Frame {
	f := newBase(KindCall, nil)
	f.Payload = payload
	return f
}

// CallCaused builds a Call frame that propagates cause's trace id,
// for Calls issued while handling another frame.
func CallCaused(payload []byte, cause Frame) Frame {
	f := newBase(KindCall, &cause)
	f.Payload = payload
	return f
}

// Response builds a Response frame answering cause: its correlation_id
// is cause's message_id and its trace id is cause's trace id.
func Response(payload []byte, cause Frame) Frame {
	f := newBase(KindResponse, &cause)
	f.CorrelationID = cause.MessageID
	f.Payload = payload
	return f
}

// Error builds an Error frame correlated to the frame that caused it.
func Error(payload []byte, cause Frame) Frame {
	f := newBase(KindError, &cause)
	f.CorrelationID = cause.MessageID
	f.Payload = payload
	return f
}

// Notify builds a fire-and-forget Notify frame.
func Notify(payload []byte) Frame {
	f := newBase(KindNotify, nil)
	f.Payload = payload
	return f
}

// StreamOpen opens a new stream; the returned frame's MessageID IS the
// stream identifier for its entire lifetime (spec §9).
func StreamOpen(payload []byte) Frame {
	f := newBase(KindStreamOpen, nil)
	f.Payload = payload
	return f
}

// StreamChunk emits one chunk of the stream opened by open. There is
// no separate stream identifier: the stream is identified throughout
// its lifetime by open.MessageID (spec §9), which becomes this
// frame's correlation_id.
func StreamChunk(payload []byte, open Frame) Frame {
	f := newBase(KindStreamChunk, &open)
	f.CorrelationID = open.MessageID
	f.Payload = payload
	return f
}

// StreamClose closes the stream opened by open.
func StreamClose(open Frame) Frame {
	f := newBase(KindStreamClose, &open)
	f.CorrelationID = open.MessageID
	return f
}

// Ping builds a liveness probe frame (correlation_id 0).
func Ping() Frame {
	return newBase(KindPing, nil)
}

// Pong answers ping, correlating to ping's message id and inheriting
// its trace id.
func Pong(ping Frame) Frame {
	f := newBase(KindPong, &ping)
	f.CorrelationID = ping.MessageID
	return f
}
