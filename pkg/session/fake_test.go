package session

import (
	"context"
	"errors"
	"sync"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

var errBoom = errors.New("boom")

type fakeClient struct {
	ready chan struct{}

	mu      sync.Mutex
	events  chan<- Event
	moves   []Movement
	chats   []string
	closes  int
	moveErr error
	chatErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{ready: make(chan struct{})}
}

func (f *fakeClient) Run(ctx context.Context, events chan<- Event) {
	f.mu.Lock()
	f.events = events
	f.mu.Unlock()
	close(f.ready)

	<-ctx.Done()
}

func (f *fakeClient) emit(ev Event) {
	<-f.ready

	f.mu.Lock()
	ch := f.events
	f.mu.Unlock()

	ch <- ev
}

func (f *fakeClient) Move(m Movement) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.moves = append(f.moves, m)

	return f.moveErr
}

func (f *fakeClient) Chat(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.chatErr != nil {
		return f.chatErr
	}

	f.chats = append(f.chats, message)

	return nil
}

func (f *fakeClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closes++

	return nil
}

func (f *fakeClient) moveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.moves)
}

func (f *fakeClient) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closes
}

// fakeDialer hands out prepared clients in order.
type fakeDialer struct {
	mu      sync.Mutex
	clients []*fakeClient
	opened  int
	err     error
}

func (d *fakeDialer) Open(models.Endpoint) (Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}

	var c *fakeClient
	if d.opened < len(d.clients) {
		c = d.clients[d.opened]
	} else {
		c = newFakeClient()
		d.clients = append(d.clients, c)
	}

	d.opened++

	return c, nil
}

func (d *fakeDialer) client(i int) *fakeClient {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.clients[i]
}

type recorder struct {
	mu     sync.Mutex
	states []models.SessionState
	chat   []models.ChatEntry
}

func (r *recorder) SessionChanged(st models.SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states = append(r.states, st)
}

func (r *recorder) ChatReceived(e models.ChatEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chat = append(r.chat, e)
}

func (r *recorder) phases() []models.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Phase, 0, len(r.states))
	for _, st := range r.states {
		out = append(out, st.Phase)
	}

	return out
}

func (r *recorder) chats() []models.ChatEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.ChatEntry(nil), r.chat...)
}
