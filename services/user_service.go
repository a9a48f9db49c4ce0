package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
	"github.com/Armand9999/fitness-app/utils"
)

var validGoals = map[string]bool{
	models.GoalLoseWeight:  true,
	models.GoalBuildMuscle: true,
	models.GoalStayFit:     true,
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindOrProvision resolves the identity-provider subject to a local user
// row, creating one on first sight. Accounts themselves live with the
// provider; the row only anchors profile data and foreign keys.
func (s *UserService) FindOrProvision(publicID, email string) (*models.User, error) {
	if publicID == "" {
		return nil, models.ErrUnauthenticated
	}
	var user models.User
	err := s.db.Where("user_id = ?", publicID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{UserID: publicID, Email: email}
		err = s.db.Create(&user).Error
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

// GetProfile returns the profile view including the derived BMI.
func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	profile := map[string]interface{}{
		"user_id":        user.UserID,
		"email":          user.Email,
		"age":            user.Age,
		"weight_kg":      user.WeightKg,
		"height_cm":      user.HeightCm,
		"gender":         user.Gender,
		"activity_level": user.ActivityLevel,
		"goal":           user.Goal,
		"timezone":       user.Timezone,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

// ProfileUpdate carries the mutable anthropometric fields. Zero values mean
// "leave unchanged".
type ProfileUpdate struct {
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Timezone      string  `json:"timezone"`
}

// UpdateProfile validates and applies the update in place.
func (s *UserService) UpdateProfile(userID uint, in ProfileUpdate) (*models.User, error) {
	if in.Age < 0 || in.WeightKg < 0 || in.HeightCm < 0 {
		return nil, fmt.Errorf("%w: numeric fields must be positive", models.ErrInvalidInput)
	}
	if in.Gender != "" && in.Gender != "male" && in.Gender != "female" {
		return nil, fmt.Errorf("%w: gender must be \"male\" or \"female\"", models.ErrInvalidInput)
	}
	if in.ActivityLevel != "" {
		if _, ok := utils.ActivityMultipliers[in.ActivityLevel]; !ok {
			return nil, fmt.Errorf("%w: unknown activity level %q", models.ErrInvalidInput, in.ActivityLevel)
		}
	}
	if in.Goal != "" && !validGoals[in.Goal] {
		return nil, fmt.Errorf("%w: unknown goal %q", models.ErrInvalidInput, in.Goal)
	}
	if in.Timezone != "" {
		if _, err := time.LoadLocation(in.Timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", models.ErrInvalidInput, in.Timezone)
		}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if in.Age > 0 {
		user.Age = in.Age
	}
	if in.WeightKg > 0 {
		user.WeightKg = in.WeightKg
	}
	if in.HeightCm > 0 {
		user.HeightCm = in.HeightCm
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.ActivityLevel != "" {
		user.ActivityLevel = in.ActivityLevel
	}
	if in.Goal != "" {
		user.Goal = in.Goal
	}
	if in.Timezone != "" {
		user.Timezone = in.Timezone
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	return &user, nil
}
