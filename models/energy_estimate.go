package models

import (
	"gorm.io/gorm"
)

// EnergyEstimate is append-only: one row per computation, history is kept.
type EnergyEstimate struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Value  int    `gorm:"not null"` // kcal/day
	Method string `gorm:"not null"` // e.g. "mifflin_st_jeor"
}
