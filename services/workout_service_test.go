package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Armand9999/fitness-app/models"
)

func TestWorkoutService_CompleteAppendsSession(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	bus := NewEventBus()
	svc := NewWorkoutServiceWith(db, bus)

	got := make(chan Event, 1)
	sub := bus.Subscribe(TopicWorkoutSessions, func(e Event) { got <- e })
	defer bus.Unsubscribe(sub)

	exercises := []Exercise{{Name: "Push-ups", Sets: 3, Reps: "10-12", Instructions: "Back straight"}}
	session, err := svc.Complete(user.ID, "Morning strength", 30, exercises)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.CompletedAt.IsZero() {
		t.Error("expected a completion timestamp")
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Error("expected a workout_sessions change event")
	}

	var count int64
	db.Model(&models.WorkoutSession{}).Count(&count)
	if count != 1 {
		t.Errorf("expected one session row, got %d", count)
	}
}

func TestWorkoutService_RejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutServiceWith(db, NewEventBus())

	if _, err := svc.Complete(1, "", 30, nil); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Complete(1, "Run", 0, nil); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("zero duration: expected ErrInvalidInput, got %v", err)
	}
}
