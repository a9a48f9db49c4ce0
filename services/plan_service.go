package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Armand9999/fitness-app/models"
)

// GeneratorFn produces the plan to persist when the cache gate finds no row
// for its key. It is only invoked on a miss.
type GeneratorFn func(ctx context.Context) (*models.DailyPlan, error)

// PlanService is the daily-plan lifecycle: an at-most-one-plan-per-
// (user, date, kind) cache gate plus delete-and-recreate regeneration.
// Both paths serialize on a shared per-key mutex; the composite unique index
// on daily_plans backs the same guarantee across processes.
type PlanService struct {
	db  *gorm.DB
	gen *GeneratorService
	bus *EventBus
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db, gen: NewGeneratorService(), bus: Bus}
}

// NewPlanServiceWith injects the generator and bus; used by tests.
func NewPlanServiceWith(db *gorm.DB, gen *GeneratorService, bus *EventBus) *PlanService {
	return &PlanService{db: db, gen: gen, bus: bus}
}

// LocalDate formats t as the YYYY-MM-DD day it falls on in loc.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

func planKey(userID uint, date, kind string) string {
	return fmt.Sprintf("plan/%d/%s/%s", userID, date, kind)
}

func planTopic(kind string) string {
	if kind == models.PlanKindMeal {
		return TopicMealPlans
	}
	return TopicWorkoutPlans
}

// GetOrCreate returns the existing plan for (userID, date, kind) or invokes
// generate, persists the result, and returns it. On a hit generate is never
// called. The generate+persist unit runs detached from the caller's
// cancellation so a dropped connection doesn't waste the provider call; a
// later fetch observes the persisted plan.
func (s *PlanService) GetOrCreate(ctx context.Context, userID uint, date, kind string, generate GeneratorFn) (*models.DailyPlan, error) {
	if err := validatePlanKey(userID, date, kind); err != nil {
		return nil, err
	}

	// Fast path: no lock needed for a read hit.
	if plan, err := s.fetch(ctx, userID, date, kind); err != nil {
		return nil, err
	} else if plan != nil {
		return plan, nil
	}

	unlock := planLocks.Lock(planKey(userID, date, kind))
	defer unlock()

	// Re-check under the lock: another caller may have won the miss.
	if plan, err := s.fetch(ctx, userID, date, kind); err != nil {
		return nil, err
	} else if plan != nil {
		return plan, nil
	}

	return s.generateAndInsert(context.WithoutCancel(ctx), userID, date, kind, generate)
}

// Regenerate deletes the day's plan (a no-op when absent) and generates a
// fresh one as a single serialized unit, so a racing GetOrCreate on the same
// key observes either the old row or the replacement, never zero or two.
func (s *PlanService) Regenerate(ctx context.Context, userID uint, date, kind string, generate GeneratorFn) (*models.DailyPlan, error) {
	if err := validatePlanKey(userID, date, kind); err != nil {
		return nil, err
	}

	unlock := planLocks.Lock(planKey(userID, date, kind))
	defer unlock()

	// Hard delete: a soft-deleted row would still occupy the unique key and
	// block the replacement insert.
	dctx := context.WithoutCancel(ctx)
	res := s.db.WithContext(dctx).Unscoped().
		Where("user_id = ? AND date = ? AND kind = ?", userID, date, kind).
		Delete(&models.DailyPlan{})
	if res.Error != nil {
		return nil, fmt.Errorf("deleting %s plan: %w", kind, res.Error)
	}
	if res.RowsAffected > 0 {
		s.bus.Publish(Event{Topic: planTopic(kind), UserID: userID})
	}

	return s.generateAndInsert(dctx, userID, date, kind, generate)
}

// GetOrCreateWorkout runs the cache gate with a workout generator bound to
// the user's profile.
func (s *PlanService) GetOrCreateWorkout(ctx context.Context, user *models.User, date string, durationMinutes int) (*models.DailyPlan, error) {
	return s.GetOrCreate(ctx, user.ID, date, models.PlanKindWorkout, s.workoutGenerator(user, date, durationMinutes))
}

func (s *PlanService) RegenerateWorkout(ctx context.Context, user *models.User, date string, durationMinutes int) (*models.DailyPlan, error) {
	return s.Regenerate(ctx, user.ID, date, models.PlanKindWorkout, s.workoutGenerator(user, date, durationMinutes))
}

// GetOrCreateMeal runs the cache gate with a meal generator bound to the
// user's profile and latest energy estimate. Fails with ErrMissingEstimate
// when no estimate has ever been computed.
func (s *PlanService) GetOrCreateMeal(ctx context.Context, user *models.User, date string) (*models.DailyPlan, error) {
	return s.GetOrCreate(ctx, user.ID, date, models.PlanKindMeal, s.mealGenerator(user, date))
}

func (s *PlanService) RegenerateMeal(ctx context.Context, user *models.User, date string) (*models.DailyPlan, error) {
	return s.Regenerate(ctx, user.ID, date, models.PlanKindMeal, s.mealGenerator(user, date))
}

func (s *PlanService) workoutGenerator(user *models.User, date string, durationMinutes int) GeneratorFn {
	if durationMinutes <= 0 {
		durationMinutes = 30
	}
	return func(ctx context.Context) (*models.DailyPlan, error) {
		data, err := s.gen.GenerateWorkout(ctx, user, durationMinutes)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(data.Exercises)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
		}
		goal := user.Goal
		if goal == "" {
			goal = models.GoalStayFit
		}
		return &models.DailyPlan{
			UserID:          user.ID,
			Date:            date,
			Kind:            models.PlanKindWorkout,
			Goal:            goal,
			Difficulty:      data.Difficulty,
			WorkoutType:     data.WorkoutType,
			DurationMinutes: durationMinutes,
			Payload:         payload,
		}, nil
	}
}

func (s *PlanService) mealGenerator(user *models.User, date string) GeneratorFn {
	return func(ctx context.Context) (*models.DailyPlan, error) {
		estimate, err := s.latestEstimate(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		data, target, err := s.gen.GenerateMeal(ctx, user, estimate)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
		}
		goal := user.Goal
		if goal == "" {
			goal = models.GoalStayFit
		}
		return &models.DailyPlan{
			UserID:         user.ID,
			Date:           date,
			Kind:           models.PlanKindMeal,
			Goal:           goal,
			CaloriesTarget: target,
			Payload:        payload,
		}, nil
	}
}

func (s *PlanService) latestEstimate(ctx context.Context, userID uint) (*models.EnergyEstimate, error) {
	var est models.EnergyEstimate
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&est).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrMissingEstimate
	}
	if err != nil {
		return nil, fmt.Errorf("fetching latest estimate: %w", err)
	}
	return &est, nil
}

func (s *PlanService) fetch(ctx context.Context, userID uint, date, kind string) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND kind = ?", userID, date, kind).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching %s plan: %w", kind, err)
	}
	return &plan, nil
}

func (s *PlanService) generateAndInsert(ctx context.Context, userID uint, date, kind string, generate GeneratorFn) (*models.DailyPlan, error) {
	plan, err := generate(ctx)
	if err != nil {
		return nil, err
	}
	plan.UserID, plan.Date, plan.Kind = userID, date, kind

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		// A concurrent writer (another process; the in-process path is held
		// off by the key lock) may have inserted first. The winner's row is
		// the plan; the conflict is never surfaced.
		if winner, ferr := s.fetch(ctx, userID, date, kind); ferr == nil && winner != nil {
			return winner, nil
		}
		return nil, fmt.Errorf("persisting %s plan: %w", kind, err)
	}

	s.bus.Publish(Event{Topic: planTopic(kind), UserID: userID})
	return plan, nil
}

func validatePlanKey(userID uint, date, kind string) error {
	if userID == 0 {
		return fmt.Errorf("%w: missing user", models.ErrInvalidInput)
	}
	if kind != models.PlanKindWorkout && kind != models.PlanKindMeal {
		return fmt.Errorf("%w: unknown plan kind %q", models.ErrInvalidInput, kind)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrInvalidInput)
	}
	return nil
}
