package relay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeClient() *Client {
	return &Client{Send: make(chan []byte, 10)}
}

func recv(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case got := <-c.Send:
		return got
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
		return nil
	}
}

func assertSilent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case got := <-c.Send:
		t.Fatalf("unexpected message: %s", got)
	default:
	}
}

func TestBroadcastExcludesSender(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a, b, c := newFakeClient(), newFakeClient(), newFakeClient()
	hub.register <- a
	hub.register <- b
	hub.register <- c

	payload := json.RawMessage(`{"lat":-1.28,"lng":36.82,"message":"help"}`)
	data, err := json.Marshal(envelope{Event: EventSOSAlert, Data: payload})
	require.NoError(t, err)
	hub.broadcast <- broadcastMsg{Sender: a, Data: data}

	for _, peer := range []*Client{b, c} {
		var out envelope
		require.NoError(t, json.Unmarshal(recv(t, peer), &out))
		assert.Equal(t, EventSOSAlert, out.Event)
		assert.JSONEq(t, string(payload), string(out.Data))
	}
	assertSilent(t, a)
}

func TestDisconnectedClientReceivesNothing(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a, b, c := newFakeClient(), newFakeClient(), newFakeClient()
	hub.register <- a
	hub.register <- b
	hub.register <- c
	hub.unregister <- b

	// unregister closes the Send channel
	_, open := <-b.Send
	assert.False(t, open)

	hub.broadcast <- broadcastMsg{Sender: a, Data: []byte(`{"event":"sos-alert"}`)}
	assert.NotNil(t, recv(t, c))
	assertSilent(t, a)
}

func TestSlowPeerDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{Send: make(chan []byte)} // no buffer, nobody reading
	ok := newFakeClient()
	hub.register <- slow
	hub.register <- ok

	hub.broadcast <- broadcastMsg{Data: []byte(`{"event":"sos-alert"}`)}
	assert.NotNil(t, recv(t, ok))

	// the slow peer was dropped and its channel closed
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHTTPBroadcastReachesEveryone(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a, b := newFakeClient(), newFakeClient()
	hub.register <- a
	hub.register <- b

	hub.Broadcast(json.RawMessage(`{"lat":1,"lng":2,"message":"m"}`))

	for _, peer := range []*Client{a, b} {
		var out envelope
		require.NoError(t, json.Unmarshal(recv(t, peer), &out))
		assert.Equal(t, EventSOSAlert, out.Event)
	}
}

func TestStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := newFakeClient()
	hub.register <- a
	hub.Stop()

	select {
	case _, open := <-a.Send:
		assert.False(t, open)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for close")
	}
}
