package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
	"github.com/Armand9999/fitness-app/utils"
)

const estimateMethod = "mifflin_st_jeor"

// EnergyService computes and records energy-expenditure estimates. Every
// computation appends a row; history is intentionally kept.
type EnergyService struct {
	db *gorm.DB
}

func NewEnergyService(db *gorm.DB) *EnergyService {
	return &EnergyService{db: db}
}

// RecordEstimate computes the user's TDEE and appends it as a new estimate.
func (s *EnergyService) RecordEstimate(userID uint, weightKg, heightCm, ageYears float64, gender, activityLevel string) (*models.EnergyEstimate, error) {
	value, err := utils.EstimateTDEE(weightKg, heightCm, ageYears, gender, activityLevel)
	if err != nil {
		return nil, err
	}

	est := &models.EnergyEstimate{
		UserID: userID,
		Value:  value,
		Method: estimateMethod,
	}
	if err := s.db.Create(est).Error; err != nil {
		return nil, fmt.Errorf("saving energy estimate: %w", err)
	}
	return est, nil
}

// History returns the user's estimates, newest first.
func (s *EnergyService) History(userID uint) ([]models.EnergyEstimate, error) {
	var rows []models.EnergyEstimate
	err := s.db.
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching estimates: %w", err)
	}
	return rows, nil
}
