// Package webrtc adapts github.com/pion/webrtc/v4 onto the narrow
// peer.Connection/peer.DataChannel interfaces (spec §4.7/§6.6 "D1").
// Offers, answers, and ICE candidates are carried across the
// peer.Connection boundary as JSON-encoded bytes so the peer package
// itself never imports pion types.
package webrtc

import (
	"encoding/json"
	"fmt"

	pion "github.com/pion/webrtc/v4"

	"github.com/Zameneing/mxp-go/peer"
)

// Connection wraps a pion PeerConnection.
type Connection struct {
	pc *pion.PeerConnection
}

// NewConnection creates a Connection using config (nil for pion's
// default, empty configuration — e.g. no STUN/TURN servers).
func NewConnection(config *pion.Configuration) (*Connection, error) {
	cfg := pion.Configuration{}
	if config != nil {
		cfg = *config
	}
	pc, err := pion.NewPeerConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("webrtc: new peer connection: %w", err)
	}
	return &Connection{pc: pc}, nil
}

func (c *Connection) CreateDataChannel(label string, mode peer.ChannelMode) (peer.DataChannel, error) {
	ordered := true
	init := &pion.DataChannelInit{Ordered: &ordered}
	if mode == peer.ChannelUnreliable {
		var zero uint16
		init.MaxRetransmits = &zero
	}

	dc, err := c.pc.CreateDataChannel(label, init)
	if err != nil {
		return nil, fmt.Errorf("webrtc: create data channel: %w", err)
	}
	return &DataChannel{dc: dc}, nil
}

func (c *Connection) CreateOffer() ([]byte, error) {
	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return nil, fmt.Errorf("webrtc: create offer: %w", err)
	}
	return json.Marshal(offer)
}

func (c *Connection) CreateAnswer() ([]byte, error) {
	answer, err := c.pc.CreateAnswer(nil)
	if err != nil {
		return nil, fmt.Errorf("webrtc: create answer: %w", err)
	}
	return json.Marshal(answer)
}

func (c *Connection) SetLocalDescription(sdp []byte) error {
	var desc pion.SessionDescription
	if err := json.Unmarshal(sdp, &desc); err != nil {
		return fmt.Errorf("webrtc: decode local description: %w", err)
	}
	return c.pc.SetLocalDescription(desc)
}

func (c *Connection) SetRemoteDescription(sdp []byte) error {
	var desc pion.SessionDescription
	if err := json.Unmarshal(sdp, &desc); err != nil {
		return fmt.Errorf("webrtc: decode remote description: %w", err)
	}
	return c.pc.SetRemoteDescription(desc)
}

func (c *Connection) AddICECandidate(candidate []byte) error {
	var init pion.ICECandidateInit
	if err := json.Unmarshal(candidate, &init); err != nil {
		return fmt.Errorf("webrtc: decode ICE candidate: %w", err)
	}
	return c.pc.AddICECandidate(init)
}

func (c *Connection) OnICECandidate(h func([]byte)) {
	c.pc.OnICECandidate(func(candidate *pion.ICECandidate) {
		if candidate == nil {
			return
		}
		data, err := json.Marshal(candidate.ToJSON())
		if err != nil {
			return
		}
		h(data)
	})
}

func (c *Connection) OnConnectionStateChange(h func(peer.State)) {
	c.pc.OnConnectionStateChange(func(s pion.PeerConnectionState) {
		h(mapState(s))
	})
}

func (c *Connection) OnDataChannel(h func(peer.DataChannel)) {
	c.pc.OnDataChannel(func(dc *pion.DataChannel) {
		h(&DataChannel{dc: dc})
	})
}

func (c *Connection) Close() error {
	return c.pc.Close()
}

func mapState(s pion.PeerConnectionState) peer.State {
	switch s {
	case pion.PeerConnectionStateNew:
		return peer.StateNew
	case pion.PeerConnectionStateConnecting:
		return peer.StateConnecting
	case pion.PeerConnectionStateConnected:
		return peer.StateConnected
	case pion.PeerConnectionStateDisconnected:
		return peer.StateDisconnected
	case pion.PeerConnectionStateClosed:
		return peer.StateClosed
	case pion.PeerConnectionStateFailed:
		return peer.StateFailed
	default:
		return peer.StateNew
	}
}

// DataChannel wraps a pion DataChannel, always operating in binary
// mode (spec §4.7 "Data channel").
type DataChannel struct {
	dc *pion.DataChannel
}

func (d *DataChannel) Send(data []byte) error {
	return d.dc.Send(data)
}

func (d *DataChannel) OnMessage(h func([]byte)) {
	d.dc.OnMessage(func(msg pion.DataChannelMessage) {
		h(msg.Data)
	})
}

func (d *DataChannel) OnOpen(h func()) {
	d.dc.OnOpen(h)
}

func (d *DataChannel) OnClose(h func()) {
	d.dc.OnClose(h)
}

func (d *DataChannel) Close() error {
	return d.dc.Close()
}
