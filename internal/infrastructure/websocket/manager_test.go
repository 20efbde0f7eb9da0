package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) (*Manager, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	m.Start(ctx)
	t.Cleanup(cancel)
	return m, cancel
}

func register(t *testing.T, m *Manager, userID string) *Client {
	t.Helper()
	c := NewClient(userID, nil)
	require.True(t, m.Add(c))
	require.Eventually(t, func() bool { return m.Connected(userID) }, time.Second, 5*time.Millisecond)
	return c
}

func TestSendToUserNotConnected(t *testing.T) {
	m, _ := startManager(t)
	assert.False(t, m.SendToUser("nobody", []byte("hi")))
}

func TestSendToUserDelivers(t *testing.T) {
	m, _ := startManager(t)
	c := register(t, m, "u1")

	assert.True(t, m.SendToUser("u1", []byte("hi")))
	assert.Equal(t, []byte("hi"), <-c.Send)
}

func TestSendToUserDropsWhenBufferFull(t *testing.T) {
	m, _ := startManager(t)
	register(t, m, "u1")

	for i := 0; i < sendBuffer; i++ {
		require.True(t, m.SendToUser("u1", []byte("x")))
	}
	assert.False(t, m.SendToUser("u1", []byte("overflow")))
}

func TestNewerConnectionReplacesOlder(t *testing.T) {
	m, _ := startManager(t)
	first := register(t, m, "u1")

	second := NewClient("u1", nil)
	require.True(t, m.Add(second))

	// The replaced client's channel is closed so its writer stops.
	select {
	case _, ok := <-first.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("old client was not released")
	}

	// A late unregister from the old connection must not drop the new one.
	m.Unregister <- first
	require.True(t, m.SendToUser("u1", []byte("still here")))
	assert.Equal(t, []byte("still here"), <-second.Send)
}

func TestUnregisterRemovesClient(t *testing.T) {
	m, _ := startManager(t)
	c := register(t, m, "u1")

	m.Unregister <- c
	require.Eventually(t, func() bool { return !m.Connected("u1") }, time.Second, 5*time.Millisecond)

	_, ok := <-c.Send
	assert.False(t, ok)
}

func TestStopReleasesClients(t *testing.T) {
	m, cancel := startManager(t)
	c := register(t, m, "u1")

	cancel()

	select {
	case <-m.Done():
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
	_, ok := <-c.Send
	assert.False(t, ok)
	assert.False(t, m.Connected("u1"))
	assert.False(t, m.Add(NewClient("u2", nil)))
}
