package signaling

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualProvider_ReceiveDeliversToHandler(t *testing.T) {
	var got Message
	received := make(chan struct{}, 1)

	p := NewManualProvider("alice", nil)
	p.OnMessage(func(m Message) {
		got = m
		received <- struct{}{}
	})

	p.Receive(Message{Kind: KindOffer, From: "bob", To: "alice"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("handler never invoked")
	}
	assert.Equal(t, KindOffer, got.Kind)
	assert.Equal(t, "bob", got.From)
}

func TestManualProvider_SendUsesSink(t *testing.T) {
	var sent Message
	p := NewManualProvider("alice", func(m Message) error {
		sent = m
		return nil
	})

	require.NoError(t, p.Send(Message{Kind: KindAnswer, To: "bob"}))
	assert.Equal(t, KindAnswer, sent.Kind)
}

// S6 (signaling isolation) — a broadcast provider only delivers
// messages addressed to its own id or the wildcard.
func TestBroadcast_DeliversOnlyToMatchingRecipient(t *testing.T) {
	bus := NewBroadcast()
	alice := bus.Join("alice")
	bob := bus.Join("bob")

	var mu sync.Mutex
	var aliceGot, bobGot []Message
	alice.OnMessage(func(m Message) {
		mu.Lock()
		aliceGot = append(aliceGot, m)
		mu.Unlock()
	})
	bob.OnMessage(func(m Message) {
		mu.Lock()
		bobGot = append(bobGot, m)
		mu.Unlock()
	})

	require.NoError(t, bob.Send(Message{Kind: KindOffer, To: "alice"}))

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, aliceGot, 1)
	assert.Len(t, bobGot, 0)
}

func TestBroadcast_WildcardReachesEveryone(t *testing.T) {
	bus := NewBroadcast()
	alice := bus.Join("alice")
	bob := bus.Join("bob")

	var mu sync.Mutex
	count := 0
	record := func(Message) {
		mu.Lock()
		count++
		mu.Unlock()
	}
	alice.OnMessage(record)
	bob.OnMessage(record)

	require.NoError(t, alice.Send(Message{Kind: KindHangup, To: "*"}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, count)
}

func TestHub_DeliversAsynchronouslyToAddressedPeer(t *testing.T) {
	hub := NewHub()
	alice := hub.Join("alice")
	bob := hub.Join("bob")

	received := make(chan Message, 1)
	bob.OnMessage(func(m Message) { received <- m })

	require.NoError(t, alice.Send(Message{Kind: KindIceCandidate, To: "bob"}))

	select {
	case m := <-received:
		assert.Equal(t, "alice", m.From)
	case <-time.After(time.Second):
		t.Fatal("bob never received the message")
	}
}

func TestHub_UnknownRecipientIsDropped(t *testing.T) {
	hub := NewHub()
	alice := hub.Join("alice")
	// no one ever joins as "ghost"
	assert.NoError(t, alice.Send(Message{Kind: KindOffer, To: "ghost"}))
}
