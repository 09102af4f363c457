// Package signaling implements the peer-connection signaling
// abstraction (spec §4.6): a small, transport-agnostic vocabulary for
// exchanging offers, answers, and ICE candidates out of band from the
// frame codec.
package signaling

// Kind discriminates the four signaling message kinds.
type Kind string

const (
	KindOffer        Kind = "offer"
	KindAnswer       Kind = "answer"
	KindIceCandidate Kind = "ice_candidate"
	KindHangup       Kind = "hangup"
)

// Message is a single signaling exchange between two peer ids. Payload
// is an opaque blob supplied by the underlying peer-connection
// library (an SDP blob, an ICE candidate string, ...).
type Message struct {
	Kind    Kind   `json:"kind"`
	From    string `json:"from"`
	To      string `json:"to"`
	Payload []byte `json:"payload,omitempty"`
}

// Handler receives signaling messages delivered by a Provider.
type Handler func(Message)

// Provider is anything that can asynchronously deliver and accept
// signaling messages for exactly one local peer id (spec §4.6).
type Provider interface {
	// Send transmits msg to the backend. Delivery to the remote party
	// is asynchronous and best-effort; errors returned here report
	// only local send failures (e.g. a closed connection).
	Send(msg Message) error

	// OnMessage registers the handler invoked for every inbound
	// message. Only one handler is active at a time; a later call
	// replaces the previous handler.
	OnMessage(h Handler)

	// LocalID returns this provider's own peer id.
	LocalID() string

	// Close releases any underlying connection or goroutines.
	Close() error
}
