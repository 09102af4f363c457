package signaling

import "sync"

// ManualProvider is the reference "manual" signaling backend (spec
// §4.6): Receive injects an inbound message directly, and outgoing
// messages are handed to a caller-supplied sink instead of any real
// transport. Useful for tests and for embedding signaling transports
// this package doesn't ship a backend for.
type ManualProvider struct {
	localID string
	sink    func(Message) error

	mu      sync.Mutex
	handler Handler
}

// NewManualProvider builds a ManualProvider for localID. sink is
// invoked for every outgoing Send; it may be nil, in which case Send
// is a no-op that always succeeds.
func NewManualProvider(localID string, sink func(Message) error) *ManualProvider {
	return &ManualProvider{localID: localID, sink: sink}
}

func (p *ManualProvider) Send(msg Message) error {
	if p.sink == nil {
		return nil
	}
	return p.sink(msg)
}

func (p *ManualProvider) OnMessage(h Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = h
}

func (p *ManualProvider) LocalID() string { return p.localID }

func (p *ManualProvider) Close() error { return nil }

// Receive injects msg as if it had arrived from the transport,
// delivering it to the currently registered handler, if any.
func (p *ManualProvider) Receive(msg Message) {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h(msg)
	}
}
