package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Armand9999/fitness-app/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own database for isolation.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection, or each pooled conn would see its own :memory: db
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.EnergyEstimate{},
		&models.DailyPlan{},
		&models.WorkoutSession{},
		&models.WaterIntake{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		UserID:        uuid.NewString(),
		Email:         uuid.NewString() + "@example.com",
		Age:           25,
		WeightKg:      70,
		HeightCm:      175,
		Gender:        "male",
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalStayFit,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// newFakeProvider stands in for the generative provider: handler writes the
// raw HTTP response, and the returned service is wired to it.
func newFakeProvider(t *testing.T, handler http.HandlerFunc) *GeneratorService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &GeneratorService{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: srv.URL,
		token:   "test-token",
		model:   "test-model",
	}
}

// completionResponse wraps content in the provider's chat envelope.
func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

const validWorkoutJSON = `{
  "workout_type": "strength",
  "difficulty": "beginner",
  "exercises": [
    {"name": "Push-ups", "sets": 3, "reps": "10-12", "rest": "30 seconds", "instructions": "Keep your back straight"},
    {"name": "Plank", "duration": "45 seconds", "rest": "30 seconds", "instructions": "Brace your core"}
  ]
}`

const validMealJSON = `{
  "Meals": {
    "Breakfast": "Oats with banana and peanut butter",
    "Lunch": "Grilled chicken with rice and veggies",
    "Dinner": "Salmon with quinoa and asparagus",
    "Snacks": "Greek yogurt, almonds"
  }
}`
