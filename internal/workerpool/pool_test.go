package workerpool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tasklist/internal/domain"
)

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
	got    chan string
}

func newRecorder() *recorder {
	return &recorder{got: make(chan string, 100)}
}

func (r *recorder) handle(ev domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.got <- ev.TaskID
}

func waitID(t *testing.T, ch <-chan string, d time.Duration) string {
	t.Helper()

	select {
	case id := <-ch:
		return id
	case <-time.After(d):
		t.Fatalf("timeout waiting for event after %v", d)
		return ""
	}
}

func TestPool_DeliversEvents(t *testing.T) {
	rec := newRecorder()
	p := New(10, rec.handle)
	p.Start(1)

	if err := p.Enqueue(domain.Event{Kind: domain.EventAdded, TaskID: "a"}); err != nil {
		t.Fatalf("Enqueue() err = %v, want nil", err)
	}

	if id := waitID(t, rec.got, time.Second); id != "a" {
		t.Fatalf("handled id = %s, want a", id)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() err = %v, want nil", err)
	}
}

func TestPool_Full(t *testing.T) {
	p := New(1, func(domain.Event) {})

	// no workers started, so the single slot stays occupied
	if err := p.Enqueue(domain.Event{TaskID: "1"}); err != nil {
		t.Fatalf("Enqueue() err = %v, want nil", err)
	}
	err := p.Enqueue(domain.Event{TaskID: "2"})
	if !errors.Is(err, ErrPoolFull) {
		t.Fatalf("Enqueue() err = %v, want %v", err, ErrPoolFull)
	}
}

func TestPool_EnqueueAfterShutdown(t *testing.T) {
	p := New(1, func(domain.Event) {})
	p.Start(1)

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() err = %v, want nil", err)
	}

	err := p.Enqueue(domain.Event{TaskID: "x"})
	if !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("Enqueue() err = %v, want %v", err, ErrPoolClosed)
	}

	// second shutdown is harmless
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() err = %v, want nil", err)
	}
}

func TestPool_ShutdownDrainsQueue(t *testing.T) {
	rec := newRecorder()
	p := New(10, rec.handle)

	for _, id := range []string{"a", "b", "c"} {
		if err := p.Enqueue(domain.Event{TaskID: id}); err != nil {
			t.Fatalf("Enqueue() err = %v, want nil", err)
		}
	}
	p.Start(2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() err = %v, want nil", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.events) != 3 {
		t.Fatalf("handled %d events, want 3", len(rec.events))
	}
}

func TestPool_ShutdownTimeout(t *testing.T) {
	release := make(chan struct{})
	p := New(1, func(domain.Event) { <-release })
	p.Start(1)
	defer close(release)

	if err := p.Enqueue(domain.Event{TaskID: "slow"}); err != nil {
		t.Fatalf("Enqueue() err = %v, want nil", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Shutdown(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Shutdown() err = %v, want %v", err, context.DeadlineExceeded)
	}
}
