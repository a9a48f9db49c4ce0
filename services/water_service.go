package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
)

// WaterService tracks glasses drunk per (user, local day) with upsert
// semantics: one row per day, updated in place.
type WaterService struct {
	db  *gorm.DB
	bus *EventBus
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db, bus: Bus}
}

func NewWaterServiceWith(db *gorm.DB, bus *EventBus) *WaterService {
	return &WaterService{db: db, bus: bus}
}

// Get returns the day's row, or a zero-consumption row with the default goal
// when nothing was logged yet.
func (s *WaterService) Get(userID uint, date string) (*models.WaterIntake, error) {
	var intake models.WaterIntake
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.WaterIntake{UserID: userID, Date: date, Goal: models.DefaultWaterGoal}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching water intake: %w", err)
	}
	return &intake, nil
}

// Set upserts the day's consumed-glass count.
func (s *WaterService) Set(userID uint, date string, glasses int) (*models.WaterIntake, error) {
	if glasses < 0 {
		return nil, fmt.Errorf("%w: glasses must not be negative", models.ErrInvalidInput)
	}

	var intake models.WaterIntake
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&intake).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		intake = models.WaterIntake{
			UserID:          userID,
			Date:            date,
			GlassesConsumed: glasses,
			Goal:            models.DefaultWaterGoal,
		}
		err = s.db.Create(&intake).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent first set won the insert; update the winner's row
			err = s.db.
				Where("user_id = ? AND date = ?", userID, date).
				First(&intake).Error
			if err == nil {
				intake.GlassesConsumed = glasses
				err = s.db.Save(&intake).Error
			}
		}
	case err == nil:
		intake.GlassesConsumed = glasses
		err = s.db.Save(&intake).Error
	}
	if err != nil {
		return nil, fmt.Errorf("saving water intake: %w", err)
	}

	s.bus.Publish(Event{Topic: TopicWaterIntake, UserID: userID})
	return &intake, nil
}
