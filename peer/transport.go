package peer

// Connection is the narrow slice of a WebRTC-style peer connection
// that the state machine in this package depends on. Concrete
// transports (see package peer/webrtc) adapt a real library onto this
// interface so Peer itself never imports one directly (spec §4.7/§6.6).
type Connection interface {
	// CreateDataChannel opens a new data channel with the given label
	// and delivery mode.
	CreateDataChannel(label string, mode ChannelMode) (DataChannel, error)

	// CreateOffer generates a local offer SDP blob.
	CreateOffer() ([]byte, error)
	// CreateAnswer generates a local answer SDP blob, to be called
	// after the remote offer has been set.
	CreateAnswer() ([]byte, error)

	// SetLocalDescription applies a locally generated SDP blob.
	SetLocalDescription(sdp []byte) error
	// SetRemoteDescription applies a remote party's SDP blob.
	SetRemoteDescription(sdp []byte) error

	// AddICECandidate applies one remote ICE candidate.
	AddICECandidate(candidate []byte) error

	// OnICECandidate registers the callback invoked for each locally
	// gathered ICE candidate.
	OnICECandidate(func(candidate []byte))
	// OnConnectionStateChange registers the callback invoked whenever
	// the underlying connection's state changes.
	OnConnectionStateChange(func(State))
	// OnDataChannel registers the callback invoked when the remote
	// party opens a data channel (Responder role).
	OnDataChannel(func(DataChannel))

	// Close tears down the connection.
	Close() error
}

// DataChannel is the narrow slice of a WebRTC-style data channel Peer
// depends on.
type DataChannel interface {
	// Send writes one binary message. Implementations should return
	// an error if the channel is not open.
	Send(data []byte) error

	// OnMessage registers the callback invoked for each inbound
	// binary message.
	OnMessage(func([]byte))
	// OnOpen registers the callback invoked when the channel opens.
	OnOpen(func())
	// OnClose registers the callback invoked when the channel closes.
	OnClose(func())

	// Close closes the channel. Idempotent.
	Close() error
}
