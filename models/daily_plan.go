package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan kinds.
const (
	PlanKindWorkout = "workout"
	PlanKindMeal    = "meal"
)

// DailyPlan is a generated plan scoped to one user and one calendar day.
// Date is the user-local day as YYYY-MM-DD. The composite unique index backs
// the cache gate: an insert losing a race fails with a duplicate key and the
// winner's row is re-fetched instead.
type DailyPlan struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:ux_plan_user_date_kind,priority:1;not null"`
	Date   string `gorm:"type:varchar(10);uniqueIndex:ux_plan_user_date_kind,priority:2;not null"`
	Kind   string `gorm:"type:varchar(10);uniqueIndex:ux_plan_user_date_kind,priority:3;not null"`

	Goal            string
	Difficulty      string // workout plans
	WorkoutType     string // workout plans
	DurationMinutes int    // workout plans
	CaloriesTarget  int    // meal plans

	Payload datatypes.JSON `gorm:"not null"` // exercises[] or Meals{}
}
