package events

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event *Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	Name   string
	Order  int
	Handle func(event *Event) error
}

func (l *ListenerFunc) HandleEvent(event *Event) error { return l.Handle(event) }
func (l *ListenerFunc) Priority() int                  { return l.Order }
func (l *ListenerFunc) ID() string                     { return l.Name }

// Bus fans combat notifications out to listeners in priority order
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// SubscribeAll adds a listener for every event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, eventType := range AllEventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// Publish delivers an event to every listener. A failing listener does not
// stop delivery to the rest; all failures are joined into the returned error.
func (b *Bus) Publish(event *Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.Type]))
	copy(listeners, b.listeners[event.Type])
	b.mu.RUnlock()

	var failures []error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			failures = append(failures, fmt.Errorf("listener %s failed: %w", listener.ID(), err))
		}
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}
	return nil
}

// ListenerCount returns the number of listeners for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}
