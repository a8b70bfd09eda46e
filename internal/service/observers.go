package service

import (
	"sync"

	"tasklist/internal/domain"
)

type Observer func(ev domain.Event)

// Observers fans one event out to every subscriber. Its Notify method is
// meant to be the event pool's handler.
type Observers struct {
	mu   sync.RWMutex
	next int
	subs map[int]Observer
}

func NewObservers() *Observers {
	return &Observers{subs: make(map[int]Observer)}
}

// Subscribe registers fn and returns a func that removes it.
func (o *Observers) Subscribe(fn Observer) func() {
	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}

func (o *Observers) Notify(ev domain.Event) {
	o.mu.RLock()
	subs := make([]Observer, 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (o *Observers) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.subs)
}
