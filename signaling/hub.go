package signaling

import "sync"

// Hub is the reference "in-memory hub" backend (spec §4.6): a
// process-local registry of peer-id → handler. Unlike Broadcast, Send
// addresses exactly one recipient (msg.To) and delivers it
// asynchronously — scheduled onto its own goroutine rather than
// invoked inline on the sender's call stack, so a slow handler on one
// peer never blocks another peer's Send.
type Hub struct {
	mu       sync.Mutex
	handlers map[string]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[string]Handler)}
}

// Join returns the Provider handle for localID. The id is registered
// on the hub when the handle's OnMessage is called; messages sent to it
// before then are dropped.
func (h *Hub) Join(localID string) Provider {
	return &hubProvider{localID: localID, hub: h}
}

func (h *Hub) register(localID string, handler Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[localID] = handler
}

func (h *Hub) unregister(localID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.handlers, localID)
}

func (h *Hub) dispatch(msg Message) {
	h.mu.Lock()
	handler, ok := h.handlers[msg.To]
	h.mu.Unlock()
	if !ok {
		return
	}
	go handler(msg)
}

type hubProvider struct {
	localID string
	hub     *Hub
}

func (p *hubProvider) Send(msg Message) error {
	msg.From = p.localID
	p.hub.dispatch(msg)
	return nil
}

func (p *hubProvider) OnMessage(h Handler) {
	p.hub.register(p.localID, h)
}

func (p *hubProvider) LocalID() string { return p.localID }

func (p *hubProvider) Close() error {
	p.hub.unregister(p.localID)
	return nil
}
