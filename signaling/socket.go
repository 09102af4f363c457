package signaling

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
)

// DefaultMaxReconnectAttempts is the cap on reconnect attempts the
// socket relay backend makes before giving up (spec §4.6).
const DefaultMaxReconnectAttempts = 5

// SocketError reports a failure of the socket relay backend.
type SocketError struct {
	Op  string
	Err error
}

func (e *SocketError) Error() string {
	return fmt.Sprintf("signaling: socket relay %s: %v", e.Op, e.Err)
}

func (e *SocketError) Unwrap() error { return e.Err }

// SocketOption configures a SocketProvider.
type SocketOption func(*SocketProvider)

// WithMaxReconnectAttempts overrides the default reconnect attempt cap.
func WithMaxReconnectAttempts(n int) SocketOption {
	return func(p *SocketProvider) { p.maxAttempts = n }
}

// SocketProvider is the reference "socket relay" backend (spec §4.6):
// it connects to a URL with a peer-id query parameter, serializes
// Messages as JSON text frames, and reconnects with a linearly growing
// backoff (base 1s × attempt) capped at maxAttempts.
type SocketProvider struct {
	url         string
	localID     string
	maxAttempts int

	mu      sync.Mutex
	conn    *websocket.Conn
	handler Handler
	closed  bool
}

// DialSocket connects to rawURL (a peer_id query parameter is appended
// automatically) and starts the read loop in the background.
func DialSocket(rawURL, localID string, opts ...SocketOption) (*SocketProvider, error) {
	p := &SocketProvider{
		url:         rawURL,
		localID:     localID,
		maxAttempts: DefaultMaxReconnectAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.connect(); err != nil {
		return nil, err
	}
	go p.readLoop()
	return p, nil
}

func (p *SocketProvider) dialURL() (string, error) {
	u, err := url.Parse(p.url)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("peer_id", p.localID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *SocketProvider) connect() error {
	target, err := p.dialURL()
	if err != nil {
		return &SocketError{Op: "dial", Err: err}
	}
	conn, _, err := websocket.DefaultDialer.Dial(target, nil)
	if err != nil {
		return &SocketError{Op: "dial", Err: err}
	}

	p.mu.Lock()
	p.conn = conn
	p.mu.Unlock()
	return nil
}

func (p *SocketProvider) Send(msg Message) error {
	msg.From = p.localID
	data, err := json.Marshal(msg)
	if err != nil {
		return &SocketError{Op: "marshal", Err: err}
	}

	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return &SocketError{Op: "send", Err: fmt.Errorf("not connected")}
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return &SocketError{Op: "send", Err: err}
	}
	return nil
}

func (p *SocketProvider) OnMessage(h Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handler = h
}

func (p *SocketProvider) LocalID() string { return p.localID }

func (p *SocketProvider) Close() error {
	p.mu.Lock()
	p.closed = true
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (p *SocketProvider) readLoop() {
	for {
		p.mu.Lock()
		conn := p.conn
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return
		}
		if conn == nil {
			if !p.reconnect() {
				return
			}
			continue
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			p.mu.Lock()
			p.conn = nil
			p.mu.Unlock()
			if !p.reconnect() {
				return
			}
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		p.mu.Lock()
		h := p.handler
		p.mu.Unlock()
		if h != nil {
			h(msg)
		}
	}
}

// reconnect retries connect with linear backoff (base 1s × attempt
// number, per spec §4.6), giving up after maxAttempts. Returns false
// once the provider is closed or attempts are exhausted.
func (p *SocketProvider) reconnect() bool {
	// WithMaxRetries counts retries after the first call, so maxAttempts
	// connect calls in all means maxAttempts-1 retries.
	retries := 0
	if p.maxAttempts > 1 {
		retries = p.maxAttempts - 1
	}
	bounded := backoff.WithMaxRetries(newLinearBackOff(1*time.Second), uint64(retries))

	err := backoff.Retry(func() error {
		p.mu.Lock()
		closed := p.closed
		p.mu.Unlock()
		if closed {
			return backoff.Permanent(fmt.Errorf("closed"))
		}
		return p.connect()
	}, bounded)

	return err == nil
}

// linearBackOff implements backoff.BackOff with an interval that grows
// linearly (base, 2×base, 3×base, ...) rather than exponentially,
// matching the "base 1s × attempt" reconnect rule spec §4.6 specifies.
type linearBackOff struct {
	base    time.Duration
	attempt uint64
}

func newLinearBackOff(base time.Duration) *linearBackOff {
	return &linearBackOff{base: base}
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.base * time.Duration(b.attempt)
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}
