package services

import (
	"errors"
	"testing"

	"github.com/Armand9999/fitness-app/models"
)

func TestEnergyService_AppendsHistory(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewEnergyService(db)

	first, err := svc.RecordEstimate(user.ID, 70, 175, 25, "male", models.ActivitySedentary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Value != 2009 {
		t.Errorf("expected 2009, got %d", first.Value)
	}
	if first.Method != "mifflin_st_jeor" {
		t.Errorf("unexpected method %q", first.Method)
	}

	// same inputs append a second row, never overwrite
	if _, err := svc.RecordEstimate(user.ID, 70, 175, 25, "male", models.ActivitySedentary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := svc.History(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 rows of history, got %d", len(history))
	}
	if history[0].ID < history[1].ID {
		t.Error("expected newest first")
	}
}

func TestEnergyService_InvalidInputWritesNothing(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewEnergyService(db)

	if _, err := svc.RecordEstimate(user.ID, 0, 175, 25, "male", models.ActivitySedentary); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var count int64
	db.Model(&models.EnergyEstimate{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after rejected input, got %d", count)
	}
}
