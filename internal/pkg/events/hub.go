package events

import (
	"sync"
)

const (
	TopicRecordCreated     = "record-created"
	TopicEmployeesImported = "employees-imported"
)

// Event is a published engine event delivered to subscribers.
type Event struct {
	Topic string
	Data  interface{}
}

// Publisher is the fire-and-forget event interface the engine calls once per
// successful recording and once per bulk employee import.
type Publisher interface {
	Publish(topic string, data interface{})
}

// Hub manages subscribers and event broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber for a topic and returns the event
// channel and cleanup function. An empty topic subscribes to every topic.
func (h *Hub) Subscribe(topic string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan Event]struct{})
	}
	h.subscribers[topic][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[topic], ch)
		close(ch)
		if len(h.subscribers[topic]) == 0 {
			delete(h.subscribers, topic)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a topic and to wildcard
// subscribers. Delivery is non-blocking; a full subscriber is skipped.
func (h *Hub) Publish(topic string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event := Event{Topic: topic, Data: data}
	for _, key := range []string{topic, ""} {
		if subs, ok := h.subscribers[key]; ok {
			for ch := range subs {
				select {
				case ch <- event:
				default:
					// Skip if channel is full (non-blocking to prevent deadlock)
				}
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a topic
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[topic]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the total number of active subscribers across all topics
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
