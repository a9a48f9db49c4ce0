package models

import (
	"gorm.io/gorm"
)

const DefaultWaterGoal = 8 // glasses per day

// WaterIntake holds one row per (user, local day); upserted in place.
type WaterIntake struct {
	gorm.Model
	UserID          uint   `gorm:"uniqueIndex:ux_water_user_date,priority:1;not null"`
	Date            string `gorm:"type:varchar(10);uniqueIndex:ux_water_user_date,priority:2;not null"` // YYYY-MM-DD
	GlassesConsumed int
	Goal            int `gorm:"default:8"`
}
