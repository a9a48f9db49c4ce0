package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkoutSession is appended when a generated plan is marked complete.
type WorkoutSession struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	Name            string `gorm:"not null"`
	DurationMinutes int
	Exercises       datatypes.JSON
	CompletedAt     time.Time `gorm:"index;not null"`
}
