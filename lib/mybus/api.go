package mybus

import "regexp"

// Event is implemented by every payload that travels over the bus.
// Each event type carries its own name, so subscribers get a typed
// payload instead of an untyped object keyed by a string.
type Event interface {
	GetEventName() string
}

type Handler func(event Event)

// WildcardHandler receives every event together with its name.
type WildcardHandler func(eventName string, event Event)

// Subscription identifies a single registration so it can be removed
// again. Function values are not comparable, hence the handle.
type Subscription int

//go:generate mockgen -source=api.go -package mybus -destination bus_mock.go EventPublisher
type EventPublisher interface {
	Emit(event Event)
}

type EventSubscriber interface {
	On(eventName string, handler Handler) Subscription
	OnMatch(pattern *regexp.Regexp, handler Handler) Subscription
	OnAll(handler WildcardHandler) Subscription
	Off(subscription Subscription)
}

type EventBus interface {
	EventPublisher
	EventSubscriber

	// Trigger adapts a UI callback into a bus emission: the returned
	// func emits the captured event without the caller knowing the bus.
	Trigger(event Event) func()
}
