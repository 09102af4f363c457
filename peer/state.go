package peer

// State is a Peer's position in its connection lifecycle (spec §4.7).
type State string

const (
	StateNew          State = "new"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateDisconnected State = "disconnected"
	StateClosed       State = "closed"
	// StateFailed is an orthogonal terminal state reached from any
	// prior state when the underlying connection library reports a
	// failure it cannot recover from.
	StateFailed State = "failed"
)

// IsTerminal reports whether s is Closed or Failed. A Failed Peer
// still moves to Closed when Close is called.
func (s State) IsTerminal() bool {
	return s == StateClosed || s == StateFailed
}

// Role is which side of the handshake a Peer plays (spec §4.7).
type Role string

const (
	// RoleInitiator creates the data channel before the offer, calls
	// CreateOffer, sets the local description, and emits the Offer.
	RoleInitiator Role = "initiator"
	// RoleResponder reacts to a received Offer: sets the remote
	// description, drains queued ICE candidates, and emits an Answer.
	RoleResponder Role = "responder"
)

// ChannelMode selects the data channel's delivery guarantee.
type ChannelMode string

const (
	// ChannelReliable is ordered, reliable delivery.
	ChannelReliable ChannelMode = "reliable"
	// ChannelUnreliable is ordered with zero retransmits.
	ChannelUnreliable ChannelMode = "unreliable"
)

// DataChannelLabel is the fixed label every Peer's data channel uses
// (spec §4.7).
const DataChannelLabel = "mxp"
