// Package dispatcher implements the multi-peer connection manager
// (spec §4.8): a peer-id → Peer map, connect/disconnect/send/
// broadcast, and routing of inbound signaling messages to the right
// Peer.
package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/Zameneing/mxp-go/frame"
	"github.com/Zameneing/mxp-go/internal/logging"
	"github.com/Zameneing/mxp-go/peer"
	"github.com/Zameneing/mxp-go/signaling"
)

// DefaultConnectionTimeout bounds how long Connect waits for a peer to
// reach Connected (spec §4.8).
const DefaultConnectionTimeout = 30 * time.Second

// ConnectionFactory builds a fresh peer.Connection for one new Peer.
// Each Peer needs its own underlying connection; dispatcher never
// reuses one across peer ids.
type ConnectionFactory func() (peer.Connection, error)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConnectionTimeout overrides DefaultConnectionTimeout.
func WithConnectionTimeout(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.connectionTimeout = d }
}

// WithLogger attaches a leveled logger (spec §4.9). Default is a
// no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(disp *Dispatcher) { disp.log = l }
}

// Stats is a snapshot of dispatcher-wide counters (spec §4.8).
type Stats struct {
	MessagesSent     uint64
	MessagesReceived uint64
	BytesSent        uint64
	BytesReceived    uint64
	PeersConnected   int
}

// Dispatcher holds every Peer this local agent has a connection
// (or in-flight handshake) with.
type Dispatcher struct {
	localID   string
	signaling signaling.Provider
	newConn   ConnectionFactory

	connectionTimeout time.Duration
	log               logging.Logger

	mu    sync.Mutex
	peers map[string]*peer.Peer

	onMessage func(peerID string, f frame.Frame)

	messagesSent     uint64
	messagesReceived uint64
	bytesSent        uint64
	bytesReceived    uint64
}

// New builds a Dispatcher for localID, routing outbound signaling
// through provider and building a fresh peer.Connection via newConn
// for every peer it initiates or accepts.
func New(localID string, provider signaling.Provider, newConn ConnectionFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		localID:           localID,
		signaling:         provider,
		newConn:           newConn,
		connectionTimeout: DefaultConnectionTimeout,
		log:               logging.Noop(),
		peers:             make(map[string]*peer.Peer),
	}
	for _, opt := range opts {
		opt(d)
	}
	provider.OnMessage(d.HandleSignal)
	return d
}

// OnMessage registers the handler invoked for every frame received
// from any connected peer.
func (d *Dispatcher) OnMessage(h func(peerID string, f frame.Frame)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onMessage = h
}

// Connect establishes a connection to peerID, or returns immediately
// if one is already Connected (spec §4.8 "connect").
func (d *Dispatcher) Connect(ctx context.Context, peerID string) (*peer.Peer, error) {
	d.mu.Lock()
	existing, ok := d.peers[peerID]
	d.mu.Unlock()

	if ok {
		if existing.State() == peer.StateConnected {
			return existing, nil
		}
		_ = existing.Close()
		d.mu.Lock()
		delete(d.peers, peerID)
		d.mu.Unlock()
	}

	p, err := d.newPeer(peerID, peer.RoleInitiator)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.peers[peerID] = p
	d.mu.Unlock()

	connected := make(chan struct{})
	failed := make(chan struct{})
	var once sync.Once
	p.OnStateChange(func(s peer.State) {
		switch s {
		case peer.StateConnected:
			once.Do(func() { close(connected) })
		case peer.StateFailed:
			once.Do(func() { close(failed) })
		}
	})

	if err := p.Start(); err != nil {
		return nil, err
	}

	timeout := time.NewTimer(d.connectionTimeout)
	defer timeout.Stop()

	select {
	case <-connected:
		return p, nil
	case <-failed:
		return nil, ErrHandshakeFailed
	case <-timeout.C:
		return nil, ErrTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Disconnect closes and removes the peer entry for peerID, if any.
func (d *Dispatcher) Disconnect(peerID string) {
	d.mu.Lock()
	p, ok := d.peers[peerID]
	delete(d.peers, peerID)
	d.mu.Unlock()
	if ok {
		_ = p.Close()
	}
}

// Send writes f to peerID (spec §4.8 "send").
func (d *Dispatcher) Send(peerID string, f frame.Frame) error {
	d.mu.Lock()
	p, ok := d.peers[peerID]
	d.mu.Unlock()
	if !ok {
		return ErrUnknownPeer
	}
	if p.State() != peer.StateConnected {
		return ErrNotConnected
	}

	data, err := frame.Encode(f)
	if err != nil {
		return err
	}
	if err := p.SendEncoded(data); err != nil {
		return err
	}

	d.mu.Lock()
	d.messagesSent++
	d.bytesSent += uint64(len(data))
	d.mu.Unlock()
	return nil
}

// Broadcast encodes f once and sends it to every Connected peer.
// Per-peer failures are logged, not returned (spec §4.8 "broadcast").
func (d *Dispatcher) Broadcast(f frame.Frame) error {
	data, err := frame.Encode(f)
	if err != nil {
		return err
	}

	d.mu.Lock()
	targets := make([]*peer.Peer, 0, len(d.peers))
	for _, p := range d.peers {
		if p.State() == peer.StateConnected {
			targets = append(targets, p)
		}
	}
	d.mu.Unlock()

	var sent int
	for _, p := range targets {
		if err := p.SendEncoded(data); err != nil {
			d.log.Warnf("dispatcher: broadcast to %s failed: %v", p.ID(), err)
			continue
		}
		sent++
	}

	d.mu.Lock()
	d.messagesSent += uint64(sent)
	d.bytesSent += uint64(sent) * uint64(len(data))
	d.mu.Unlock()
	return nil
}

// HandleSignal routes one inbound signaling message, dropping it if
// it is not addressed to this dispatcher's local id (spec §4.8
// "Incoming signaling").
func (d *Dispatcher) HandleSignal(msg signaling.Message) {
	if msg.To != d.localID {
		return
	}

	switch msg.Kind {
	case signaling.KindOffer:
		p, err := d.responderFor(msg.From)
		if err != nil {
			d.log.Errorf("dispatcher: creating responder for %s: %v", msg.From, err)
			return
		}
		if err := p.HandleSignal(msg); err != nil {
			d.log.Warnf("dispatcher: handling offer from %s: %v", msg.From, err)
		}

	case signaling.KindAnswer, signaling.KindIceCandidate:
		d.mu.Lock()
		p, ok := d.peers[msg.From]
		d.mu.Unlock()
		if !ok {
			return
		}
		if err := p.HandleSignal(msg); err != nil {
			d.log.Warnf("dispatcher: handling %s from %s: %v", msg.Kind, msg.From, err)
		}

	case signaling.KindHangup:
		d.Disconnect(msg.From)
	}
}

// Stats returns a snapshot of dispatcher-wide counters.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	connected := 0
	for _, p := range d.peers {
		if p.State() == peer.StateConnected {
			connected++
		}
	}

	return Stats{
		MessagesSent:     d.messagesSent,
		MessagesReceived: d.messagesReceived,
		BytesSent:        d.bytesSent,
		BytesReceived:    d.bytesReceived,
		PeersConnected:   connected,
	}
}

func (d *Dispatcher) responderFor(remoteID string) (*peer.Peer, error) {
	d.mu.Lock()
	existing, ok := d.peers[remoteID]
	d.mu.Unlock()
	if ok {
		return existing, nil
	}

	p, err := d.newPeer(remoteID, peer.RoleResponder)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.peers[remoteID] = p
	d.mu.Unlock()
	return p, nil
}

func (d *Dispatcher) newPeer(remoteID string, role peer.Role) (*peer.Peer, error) {
	conn, err := d.newConn()
	if err != nil {
		return nil, err
	}

	p := peer.New(d.localID, remoteID, role, conn)
	p.OnSignal(func(msg signaling.Message) {
		if err := d.signaling.Send(msg); err != nil {
			d.log.Warnf("dispatcher: sending %s to %s: %v", msg.Kind, msg.To, err)
		}
	})
	p.OnMessage(func(f frame.Frame) {
		d.mu.Lock()
		d.messagesReceived++
		d.bytesReceived += uint64(len(f.Payload))
		handler := d.onMessage
		d.mu.Unlock()
		if handler != nil {
			handler(remoteID, f)
		}
	})
	return p, nil
}
