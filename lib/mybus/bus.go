package mybus

import (
	"regexp"
	"sync"
)

type registration struct {
	id      Subscription
	name    string
	pattern *regexp.Regexp
	all     WildcardHandler
	handler Handler
}

func (r registration) matches(eventName string) bool {
	if r.all != nil {
		return true
	}
	if r.pattern != nil {
		return r.pattern.MatchString(eventName)
	}
	return r.name == eventName
}

type bus struct {
	mutex         sync.Mutex
	lastID        Subscription
	registrations []registration
}

func New() EventBus {
	return &bus{}
}

func (b *bus) On(eventName string, handler Handler) Subscription {
	return b.register(registration{name: eventName, handler: handler})
}

func (b *bus) OnMatch(pattern *regexp.Regexp, handler Handler) Subscription {
	return b.register(registration{pattern: pattern, handler: handler})
}

func (b *bus) OnAll(handler WildcardHandler) Subscription {
	return b.register(registration{all: handler})
}

func (b *bus) register(r registration) Subscription {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.lastID++
	r.id = b.lastID
	b.registrations = append(b.registrations, r)

	return r.id
}

func (b *bus) Off(subscription Subscription) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for idx, r := range b.registrations {
		if r.id == subscription {
			b.registrations = append(b.registrations[:idx], b.registrations[idx+1:]...)
			return
		}
	}
}

// Emit notifies matching handlers synchronously, in registration order.
// The handler list is snapshotted first and dispatch runs outside the
// lock: a handler may Emit itself and that nested emission completes
// before the outer emission's remaining handlers run (depth-first).
// Emitting without subscribers is a no-op. Handler panics are not
// recovered here; they surface at the Emit call site.
func (b *bus) Emit(event Event) {
	eventName := event.GetEventName()

	b.mutex.Lock()
	snapshot := make([]registration, len(b.registrations))
	copy(snapshot, b.registrations)
	b.mutex.Unlock()

	for _, r := range snapshot {
		if !r.matches(eventName) {
			continue
		}
		if b.removed(r.id) {
			continue
		}
		if r.all != nil {
			r.all(eventName, event)
			continue
		}
		r.handler(event)
	}
}

// removed reports whether a registration was taken off the bus after the
// snapshot was made, so handlers unsubscribed mid-dispatch stay silent.
func (b *bus) removed(id Subscription) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, r := range b.registrations {
		if r.id == id {
			return false
		}
	}

	return true
}

func (b *bus) Trigger(event Event) func() {
	return func() {
		b.Emit(event)
	}
}
