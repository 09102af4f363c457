package peer

import "errors"

// ErrChannelClosed is returned by Send when the data channel is not
// open (spec §4.7 "Send path").
var ErrChannelClosed = errors.New("peer: data channel is not open")

// ErrAlreadyClosed reports an operation on a Peer already in the
// Closed state. Peer's own methods do not return it: Send on a closed
// Peer returns ErrChannelClosed, and Close on a closed Peer is a no-op.
var ErrAlreadyClosed = errors.New("peer: already closed")
