package services

import (
	"sync"

	"github.com/google/uuid"
)

// Topics published by the write paths and consumed by the progress feed.
const (
	TopicWorkoutPlans    = "workout_plans"
	TopicMealPlans       = "meal_plans"
	TopicWorkoutSessions = "workout_sessions"
	TopicWaterIntake     = "water_intake"
)

// Event is a change notification for one user's rows under a topic.
type Event struct {
	Topic  string
	UserID uint
}

// Subscription is the handle returned by Subscribe; pass it back to
// Unsubscribe to detach the callback.
type Subscription struct {
	id    string
	topic string
}

// EventBus is an in-process topic bus. Delivery is best-effort at-least-once:
// callbacks run on their own goroutine and must tolerate duplicate or
// coalesced notifications.
type EventBus struct {
	mu   sync.RWMutex
	subs map[string]map[string]func(Event) // topic -> sub id -> callback
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[string]map[string]func(Event))}
}

func (b *EventBus) Subscribe(topic string, fn func(Event)) *Subscription {
	sub := &Subscription{id: uuid.NewString(), topic: topic}
	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]func(Event))
	}
	b.subs[topic][sub.id] = fn
	b.mu.Unlock()
	return sub
}

func (b *EventBus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	if set := b.subs[sub.topic]; set != nil {
		delete(set, sub.id)
		if len(set) == 0 {
			delete(b.subs, sub.topic)
		}
	}
	b.mu.Unlock()
}

func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs[e.Topic]))
	for _, fn := range b.subs[e.Topic] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()
	for _, fn := range fns {
		go fn(e)
	}
}

// Bus is the process-wide bus the services publish to. Safe to use from
// anywhere; no initialization required.
var Bus = NewEventBus()
