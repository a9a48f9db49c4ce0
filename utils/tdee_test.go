package utils

import (
	"errors"
	"testing"

	"github.com/Armand9999/fitness-app/models"
)

func TestEstimateTDEE_KnownValues(t *testing.T) {
	// BMR = 700 + 1093.75 - 125 + 5 = 1673.75; x1.2 = 2008.5 -> 2009
	got, err := EstimateTDEE(70, 175, 25, "male", models.ActivitySedentary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2009 {
		t.Errorf("male/sedentary: expected 2009, got %d", got)
	}

	// BMR = 600 + 1031.25 - 150 - 161 = 1320.25; x1.55 = 2046.3875 -> 2046
	got, err = EstimateTDEE(60, 165, 30, "female", models.ActivityModeratelyActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2046 {
		t.Errorf("female/moderately_active: expected 2046, got %d", got)
	}
}

func TestEstimateTDEE_Deterministic(t *testing.T) {
	first, err := EstimateTDEE(82.5, 180, 41, "male", models.ActivityVeryActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := EstimateTDEE(82.5, 180, 41, "male", models.ActivityVeryActive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("run %d: expected %d, got %d", i, first, got)
		}
	}
}

func TestEstimateTDEE_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name             string
		weight, height   float64
		age              float64
		gender, activity string
	}{
		{"zero weight", 0, 175, 25, "male", models.ActivitySedentary},
		{"negative age", 70, 175, -1, "male", models.ActivitySedentary},
		{"bad gender", 70, 175, 25, "other", models.ActivitySedentary},
		{"bad activity", 70, 175, 25, "male", "extreme"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EstimateTDEE(c.weight, c.height, c.age, c.gender, c.activity)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmi < 24.9 || bmi > 25.1 {
		t.Errorf("expected ~25.0, got %f", bmi)
	}
	if cat := BMICategory(bmi); cat != "Overweight" {
		t.Errorf("expected Overweight at %f, got %s", bmi, cat)
	}

	if _, err := CalculateBMI(0, 81); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
