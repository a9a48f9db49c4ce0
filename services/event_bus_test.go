package services

import (
	"testing"
	"time"
)

func TestEventBus_DeliversToSubscribers(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)

	sub := bus.Subscribe(TopicWaterIntake, func(e Event) { got <- e })
	defer bus.Unsubscribe(sub)

	bus.Publish(Event{Topic: TopicWaterIntake, UserID: 42})

	select {
	case e := <-got:
		if e.UserID != 42 {
			t.Errorf("expected user 42, got %d", e.UserID)
		}
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestEventBus_TopicsAreIsolated(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)

	sub := bus.Subscribe(TopicMealPlans, func(e Event) { got <- e })
	defer bus.Unsubscribe(sub)

	bus.Publish(Event{Topic: TopicWorkoutSessions, UserID: 1})

	select {
	case e := <-got:
		t.Errorf("unexpected delivery across topics: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewEventBus()
	got := make(chan Event, 1)

	sub := bus.Subscribe(TopicMealPlans, func(e Event) { got <- e })
	bus.Unsubscribe(sub)

	bus.Publish(Event{Topic: TopicMealPlans, UserID: 1})

	select {
	case e := <-got:
		t.Errorf("delivery after unsubscribe: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventBus_UnsubscribeNilIsSafe(t *testing.T) {
	NewEventBus().Unsubscribe(nil)
}
