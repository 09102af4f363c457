// Package peer implements the per-remote connection state machine
// (spec §4.7): handshake roles, ICE candidate buffering, the "mxp"
// data channel, heartbeat, and the frame send/receive paths. It is
// transport-agnostic — see package peer/webrtc for a concrete
// pion/webrtc-backed Connection.
package peer

import (
	"fmt"
	"sync"
	"time"

	"github.com/Zameneing/mxp-go/frame"
	"github.com/Zameneing/mxp-go/internal/logging"
	"github.com/Zameneing/mxp-go/signaling"
)

// DefaultHeartbeatInterval is the default Ping cadence while Connected
// (spec §4.7).
const DefaultHeartbeatInterval = 5 * time.Second

// Option configures a Peer at construction time.
type Option func(*Peer)

// WithChannelMode sets the data channel's delivery mode. Default is
// ChannelReliable.
func WithChannelMode(mode ChannelMode) Option {
	return func(p *Peer) { p.channelMode = mode }
}

// WithHeartbeatInterval overrides DefaultHeartbeatInterval.
func WithHeartbeatInterval(d time.Duration) Option {
	return func(p *Peer) { p.heartbeatInterval = d }
}

// WithLogger attaches a leveled logger (spec §4.9). Default is a
// no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Peer) { p.log = l }
}

// Peer represents exactly one remote party (spec §4.7).
type Peer struct {
	localID  string
	remoteID string
	role     Role
	conn     Connection

	channelMode       ChannelMode
	heartbeatInterval time.Duration
	log               logging.Logger

	mu            sync.Mutex
	state         State
	dataChannel   DataChannel
	remoteSet     bool
	iceQueue      [][]byte
	connectedAt   time.Time
	lastSeen      time.Time
	stopHeartbeat chan struct{}

	onMessage     func(frame.Frame)
	onError       func(error)
	onStateChange func(State)
	onSignal      func(signaling.Message)
}

// New builds a Peer representing remoteID, as seen by localID, in the
// given role over conn. The Peer starts in State New.
func New(localID, remoteID string, role Role, conn Connection, opts ...Option) *Peer {
	p := &Peer{
		localID:           localID,
		remoteID:          remoteID,
		role:              role,
		conn:              conn,
		channelMode:       ChannelReliable,
		heartbeatInterval: DefaultHeartbeatInterval,
		log:               logging.Noop(),
		state:             StateNew,
	}
	for _, opt := range opts {
		opt(p)
	}

	conn.OnConnectionStateChange(p.handleConnStateChange)
	conn.OnICECandidate(func(candidate []byte) {
		p.emitSignal(signaling.Message{Kind: signaling.KindIceCandidate, Payload: candidate})
	})
	conn.OnDataChannel(p.wireDataChannel)

	return p
}

// ID returns the remote peer id this Peer represents.
func (p *Peer) ID() string { return p.remoteID }

// Role returns this Peer's handshake role.
func (p *Peer) Role() Role { return p.role }

// State returns the Peer's current lifecycle state.
func (p *Peer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// OnMessage registers the handler invoked for every non-heartbeat
// frame received from the remote party.
func (p *Peer) OnMessage(h func(frame.Frame)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onMessage = h
}

// OnError registers the handler invoked when an inbound chunk fails to
// decode as a frame.
func (p *Peer) OnError(h func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = h
}

// OnStateChange registers the handler invoked on every state
// transition.
func (p *Peer) OnStateChange(h func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStateChange = h
}

// OnSignal registers the handler invoked whenever the Peer needs a
// signaling message (Offer/Answer/IceCandidate/Hangup) delivered to
// the remote party. Callers typically wire this to a
// signaling.Provider's Send.
func (p *Peer) OnSignal(h func(signaling.Message)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSignal = h
}

// Start begins the handshake. Only meaningful for RoleInitiator: it
// creates the data channel, generates an offer, sets the local
// description, and emits the Offer (spec §4.7 "Roles").
func (p *Peer) Start() error {
	if p.role != RoleInitiator {
		return nil
	}
	p.setState(StateConnecting)

	dc, err := p.conn.CreateDataChannel(DataChannelLabel, p.channelMode)
	if err != nil {
		p.fail(err)
		return err
	}
	p.wireDataChannel(dc)

	offer, err := p.conn.CreateOffer()
	if err != nil {
		p.fail(err)
		return err
	}
	if err := p.conn.SetLocalDescription(offer); err != nil {
		p.fail(err)
		return err
	}

	p.emitSignal(signaling.Message{Kind: signaling.KindOffer, Payload: offer})
	return nil
}

// HandleSignal processes one inbound signaling message, per the
// Offer/Answer/IceCandidate/Hangup dispatch spec §4.7 describes.
func (p *Peer) HandleSignal(msg signaling.Message) error {
	switch msg.Kind {
	case signaling.KindOffer:
		return p.handleOffer(msg.Payload)
	case signaling.KindAnswer:
		return p.handleAnswer(msg.Payload)
	case signaling.KindIceCandidate:
		return p.handleRemoteCandidate(msg.Payload)
	case signaling.KindHangup:
		return p.Close()
	default:
		return fmt.Errorf("peer: unknown signaling kind %q", msg.Kind)
	}
}

func (p *Peer) handleOffer(sdp []byte) error {
	p.setState(StateConnecting)
	if err := p.conn.SetRemoteDescription(sdp); err != nil {
		p.fail(err)
		return err
	}
	p.markRemoteSetAndDrainICE()

	answer, err := p.conn.CreateAnswer()
	if err != nil {
		p.fail(err)
		return err
	}
	if err := p.conn.SetLocalDescription(answer); err != nil {
		p.fail(err)
		return err
	}

	p.emitSignal(signaling.Message{Kind: signaling.KindAnswer, Payload: answer})
	return nil
}

func (p *Peer) handleAnswer(sdp []byte) error {
	if err := p.conn.SetRemoteDescription(sdp); err != nil {
		p.fail(err)
		return err
	}
	p.markRemoteSetAndDrainICE()
	return nil
}

func (p *Peer) markRemoteSetAndDrainICE() {
	p.mu.Lock()
	p.remoteSet = true
	queued := p.iceQueue
	p.iceQueue = nil
	p.mu.Unlock()

	for _, candidate := range queued {
		_ = p.conn.AddICECandidate(candidate)
	}
}

// handleRemoteCandidate buffers candidates that arrive before the
// remote description is set, applying them in order afterward (spec
// §4.7 "ICE candidate buffering").
func (p *Peer) handleRemoteCandidate(candidate []byte) error {
	p.mu.Lock()
	if !p.remoteSet {
		p.iceQueue = append(p.iceQueue, candidate)
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return p.conn.AddICECandidate(candidate)
}

// Send encodes and writes frame f to the remote party.
func (p *Peer) Send(f frame.Frame) error {
	data, err := frame.Encode(f)
	if err != nil {
		return err
	}
	return p.SendEncoded(data)
}

// SendEncoded writes already-encoded frame bytes to the remote party,
// letting a caller that is fanning the same frame out to many peers
// (e.g. a broadcast) encode once instead of once per peer.
func (p *Peer) SendEncoded(data []byte) error {
	p.mu.Lock()
	dc := p.dataChannel
	state := p.state
	p.mu.Unlock()

	if dc == nil || state != StateConnected {
		return ErrChannelClosed
	}
	return dc.Send(data)
}

// Close cancels the heartbeat, closes the data channel and
// connection, and transitions to Closed. Idempotent.
func (p *Peer) Close() error {
	p.mu.Lock()
	if p.state == StateClosed {
		p.mu.Unlock()
		return nil
	}
	dc := p.dataChannel
	stop := p.stopHeartbeat
	p.stopHeartbeat = nil
	p.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	if dc != nil {
		_ = dc.Close()
	}
	_ = p.conn.Close()

	p.setState(StateClosed)
	return nil
}

func (p *Peer) wireDataChannel(dc DataChannel) {
	p.mu.Lock()
	p.dataChannel = dc
	p.mu.Unlock()

	dc.OnOpen(func() {
		p.mu.Lock()
		p.connectedAt = time.Now()
		p.lastSeen = p.connectedAt
		p.mu.Unlock()
		p.setState(StateConnected)
		p.startHeartbeat()
	})
	dc.OnClose(func() {
		p.stopHeartbeatLocked()
		if p.State() != StateClosed {
			p.setState(StateDisconnected)
		}
	})
	dc.OnMessage(p.handleChunk)
}

// handleChunk implements the receive path: decode, filter heartbeat
// frames, deliver everything else (spec §4.7 "Receive path").
func (p *Peer) handleChunk(data []byte) {
	f, err := frame.Decode(data)
	if err != nil {
		p.log.Warnf("peer: dropping undecodable chunk from %s: %v", p.remoteID, err)
		p.mu.Lock()
		onErr := p.onError
		p.mu.Unlock()
		if onErr != nil {
			onErr(err)
		}
		return
	}

	switch f.Kind {
	case frame.KindPing:
		pong := frame.Pong(f)
		if data, err := frame.Encode(pong); err == nil {
			p.mu.Lock()
			dc := p.dataChannel
			p.mu.Unlock()
			if dc != nil {
				_ = dc.Send(data)
			}
		}
		return
	case frame.KindPong:
		p.mu.Lock()
		p.lastSeen = time.Now()
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	onMsg := p.onMessage
	p.mu.Unlock()
	if onMsg != nil {
		onMsg(f)
	}
}

func (p *Peer) startHeartbeat() {
	p.mu.Lock()
	if p.stopHeartbeat != nil {
		p.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	p.stopHeartbeat = stop
	interval := p.heartbeatInterval
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.mu.Lock()
				dc := p.dataChannel
				state := p.state
				p.mu.Unlock()
				if dc == nil || state != StateConnected {
					continue
				}
				data, err := frame.Encode(frame.Ping())
				if err == nil {
					_ = dc.Send(data)
				}
			}
		}
	}()
}

func (p *Peer) stopHeartbeatLocked() {
	p.mu.Lock()
	stop := p.stopHeartbeat
	p.stopHeartbeat = nil
	p.mu.Unlock()
	if stop != nil {
		close(stop)
	}
}

func (p *Peer) handleConnStateChange(s State) {
	if s == StateFailed {
		p.fail(fmt.Errorf("peer: underlying connection failed"))
		return
	}
	p.setState(s)
}

func (p *Peer) fail(err error) {
	p.log.Errorf("peer: %s failed: %v", p.remoteID, err)
	p.mu.Lock()
	p.state = StateFailed
	onErr := p.onError
	onChange := p.onStateChange
	p.mu.Unlock()
	if onErr != nil {
		onErr(err)
	}
	if onChange != nil {
		onChange(StateFailed)
	}
}

func (p *Peer) setState(s State) {
	p.mu.Lock()
	if p.state == s {
		p.mu.Unlock()
		return
	}
	p.state = s
	onChange := p.onStateChange
	p.mu.Unlock()
	if onChange != nil {
		onChange(s)
	}
}

func (p *Peer) emitSignal(msg signaling.Message) {
	p.mu.Lock()
	msg.From = p.localID
	msg.To = p.remoteID
	onSignal := p.onSignal
	p.mu.Unlock()
	if onSignal != nil {
		onSignal(msg)
	}
}
