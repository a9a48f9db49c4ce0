package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
)

// WorkoutService appends completed sessions; rows are never updated.
type WorkoutService struct {
	db  *gorm.DB
	bus *EventBus
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db, bus: Bus}
}

func NewWorkoutServiceWith(db *gorm.DB, bus *EventBus) *WorkoutService {
	return &WorkoutService{db: db, bus: bus}
}

// Complete records that the user finished a workout.
func (s *WorkoutService) Complete(userID uint, name string, durationMinutes int, exercises []Exercise) (*models.WorkoutSession, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: workout name required", models.ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", models.ErrInvalidInput)
	}

	payload, err := json.Marshal(exercises)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	session := &models.WorkoutSession{
		UserID:          userID,
		Name:            name,
		DurationMinutes: durationMinutes,
		Exercises:       payload,
		CompletedAt:     time.Now(),
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("saving workout session: %w", err)
	}

	s.bus.Publish(Event{Topic: TopicWorkoutSessions, UserID: userID})
	return session, nil
}
