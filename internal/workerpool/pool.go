package workerpool

import (
	"context"
	"errors"
	"sync"

	"tasklist/internal/domain"
)

var (
	ErrPoolFull   = errors.New("event pool is full")
	ErrPoolClosed = errors.New("event pool is closed")
)

type EventPool interface {
	Enqueue(ev domain.Event) error
}

// Handler receives each dequeued event. Handlers run on worker goroutines.
type Handler func(ev domain.Event)

type Pool struct {
	queue   chan domain.Event
	handler Handler

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func New(poolSize int, handler Handler) *Pool {
	return &Pool{
		queue:   make(chan domain.Event, poolSize),
		handler: handler,
	}
}

// Enqueue never blocks.
func (p *Pool) Enqueue(ev domain.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- ev:
		return nil
	default:
		return ErrPoolFull
	}
}

func (p *Pool) Start(workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for ev := range p.queue {
				p.handler(ev)
			}
		}()
	}
}

// Shutdown stops accepting events and waits for queued ones to be handled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
