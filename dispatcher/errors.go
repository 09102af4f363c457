package dispatcher

import "errors"

// ErrUnknownPeer is returned by Send when no entry exists for the
// given peer id (spec §4.8).
var ErrUnknownPeer = errors.New("dispatcher: unknown peer")

// ErrNotConnected is returned by Send when the peer entry exists but
// is not in the Connected state.
var ErrNotConnected = errors.New("dispatcher: peer is not connected")

// ErrTimeout is returned by Connect when the peer does not reach
// Connected within connection_timeout.
var ErrTimeout = errors.New("dispatcher: connect timed out")

// ErrHandshakeFailed is returned by Connect when the peer transitions
// to Failed during the handshake.
var ErrHandshakeFailed = errors.New("dispatcher: handshake failed")
