package ws

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	id     string
	fail   bool
	mu     sync.Mutex
	events []domain.ViewEvent
	closed bool
}

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) SendEvent(ev domain.ViewEvent) error {
	if c.fail {
		return errors.New("broken pipe")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) received() []domain.ViewEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ViewEvent(nil), c.events...)
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestHub_Broadcast(t *testing.T) {
	req := require.New(t)
	h := NewHub()
	go h.Run()
	defer h.Stop()

	good := &fakeClient{id: "good"}
	bad := &fakeClient{id: "bad", fail: true}
	h.Register(good)
	h.Register(bad)
	req.Equal(2, h.Clients())

	req.NoError(h.BroadcastEvent(context.Background(), domain.ViewEvent{Type: domain.ViewCreated, SessionID: "s1"}))

	req.Eventually(func() bool { return len(good.received()) == 1 }, time.Second, 5*time.Millisecond)
	req.Eventually(bad.isClosed, time.Second, 5*time.Millisecond)
	req.Equal(1, h.Clients())

	h.Unregister(good)
	req.Zero(h.Clients())
	req.True(good.isClosed())
}

func TestHub_StopClosesClients(t *testing.T) {
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	c := &fakeClient{id: "c"}
	h.Register(c)
	h.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	require.True(t, c.isClosed())
}

func TestHub_BroadcastDoesNotBlockWhenFull(t *testing.T) {
	h := NewHub()
	for i := 0; i < broadcastBuffer+10; i++ {
		require.NoError(t, h.BroadcastEvent(context.Background(), domain.ViewEvent{Type: domain.ViewCreated}))
	}
}

func TestHub_RegisterAfterStop(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := &fakeClient{id: "c"}
	h.Register(c)
	h.Stop()

	late := &fakeClient{id: "late"}
	done := make(chan struct{})
	go func() {
		h.Unregister(c)
		h.Register(late)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("register/unregister blocked after stop")
	}
	require.Eventually(t, late.isClosed, time.Second, 5*time.Millisecond)
}
