package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
)

// WeekData is the derived weekly digest. It is computed on demand and never
// persisted. Partial is set when a sub-query failed and its counter holds
// the fallback value instead of a real count.
type WeekData struct {
	WorkoutsCompleted int    `json:"workouts_completed"`
	WaterGoalDays     int    `json:"water_goal_days"`
	MealPlansFollowed int    `json:"meal_plans_followed"`
	Partial           bool   `json:"partial,omitempty"`
	WeekStart         string `json:"week_start"`
	WeekEnd           string `json:"week_end"`
}

// WeeklyService reduces the week's raw event rows into one digest.
type WeeklyService struct {
	db *gorm.DB
}

func NewWeeklyService(db *gorm.DB) *WeeklyService {
	return &WeeklyService{db: db}
}

// WeekWindow returns the rolling calendar week containing ref: local
// midnight of the most recent Sunday through Saturday 23:59:59.999.
func WeekWindow(ref time.Time, loc *time.Location) (start, end time.Time) {
	ref = ref.In(loc)
	start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	start = start.AddDate(0, 0, -int(start.Weekday())) // Weekday: Sunday == 0
	end = start.AddDate(0, 0, 6).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
	return start, end
}

// Digest computes the week's counters. The three sub-queries run
// concurrently; one failing does not block the others — its counter falls
// back to zero and Partial is set. Only the window computation itself can
// make Digest return an error.
func (s *WeeklyService) Digest(ctx context.Context, userID uint, ref time.Time, loc *time.Location) (WeekData, error) {
	start, end := WeekWindow(ref, loc)
	startDate, endDate := start.Format("2006-01-02"), end.Format("2006-01-02")

	data := WeekData{WeekStart: startDate, WeekEnd: endDate}
	var workoutErr, waterErr, mealErr error

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var count int64
		workoutErr = s.db.WithContext(gctx).
			Model(&models.WorkoutSession{}).
			Where("user_id = ? AND completed_at BETWEEN ? AND ?", userID, start, end).
			Count(&count).Error
		data.WorkoutsCompleted = int(count)
		return nil
	})

	g.Go(func() error {
		var rows []models.WaterIntake
		waterErr = s.db.WithContext(gctx).
			Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
			Find(&rows).Error
		// Multiples of the goal count: 16/8 on Monday is two goals met,
		// not a boolean "met".
		for _, r := range rows {
			if r.Goal > 0 {
				data.WaterGoalDays += r.GlassesConsumed / r.Goal
			}
		}
		return nil
	})

	g.Go(func() error {
		var count int64
		mealErr = s.db.WithContext(gctx).
			Model(&models.DailyPlan{}).
			Where("user_id = ? AND kind = ? AND date BETWEEN ? AND ?",
				userID, models.PlanKindMeal, startDate, endDate).
			Count(&count).Error
		data.MealPlansFollowed = int(count)
		return nil
	})

	_ = g.Wait() // sub-errors are soft; collected below

	for _, err := range []error{workoutErr, waterErr, mealErr} {
		if err != nil {
			log.Printf("weekly digest user=%d: sub-query failed: %v", userID, err)
			data.Partial = true
		}
	}
	if workoutErr != nil {
		data.WorkoutsCompleted = 0
	}
	if waterErr != nil {
		data.WaterGoalDays = 0
	}
	if mealErr != nil {
		data.MealPlansFollowed = 0
	}

	return data, nil
}
