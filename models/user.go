package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity levels accepted by the energy estimator and profile updates.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtraActive      = "extra_active"
)

// Fitness goals. Goal drives the meal-plan calorie target adjustment.
const (
	GoalLoseWeight  = "lose_weight"
	GoalBuildMuscle = "build_muscle"
	GoalStayFit     = "stay_fit"
)

type User struct {
	gorm.Model
	UserID        string `gorm:"uniqueIndex;not null"` // public uuid from the identity provider
	Email         string `gorm:"index"`
	Age           int
	WeightKg      float64
	HeightCm      float64
	Gender        string // "male" | "female"
	ActivityLevel string
	Goal          string
	Timezone      string // IANA name; "today" is computed in this zone
}

// Location resolves the user's timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
