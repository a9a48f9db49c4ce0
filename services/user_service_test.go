package services

import (
	"errors"
	"testing"

	"github.com/Armand9999/fitness-app/models"
)

func TestFindOrProvision_CreatesOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.FindOrProvision("subject-1", "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 || user.UserID != "subject-1" {
		t.Errorf("expected a provisioned row, got %+v", user)
	}

	again, err := svc.FindOrProvision("subject-1", "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ID != user.ID {
		t.Error("expected the same row on the second resolve")
	}

	if _, err := svc.FindOrProvision("", ""); !errors.Is(err, models.ErrUnauthenticated) {
		t.Errorf("empty subject: expected ErrUnauthenticated, got %v", err)
	}
}

func TestUpdateProfile_ValidatesEnumerations(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewUserService(db)

	cases := []struct {
		name string
		in   ProfileUpdate
	}{
		{"bad gender", ProfileUpdate{Gender: "other"}},
		{"bad activity", ProfileUpdate{ActivityLevel: "extreme"}},
		{"bad goal", ProfileUpdate{Goal: "get_swole"}},
		{"bad timezone", ProfileUpdate{Timezone: "Mars/Olympus"}},
		{"negative weight", ProfileUpdate{WeightKg: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := svc.UpdateProfile(user.ID, c.in); !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUpdateProfile_PartialUpdateLeavesOtherFields(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewUserService(db)

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{Goal: models.GoalLoseWeight, Timezone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Goal != models.GoalLoseWeight {
		t.Errorf("expected updated goal, got %q", updated.Goal)
	}
	if updated.WeightKg != user.WeightKg || updated.Gender != user.Gender {
		t.Error("untouched fields must keep their values")
	}
}

func TestGetProfile_IncludesDerivedBMI(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	svc := NewUserService(db)

	profile, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := profile["bmi"]; !ok {
		t.Error("expected bmi in profile view")
	}
	if profile["goal"] != models.GoalStayFit {
		t.Errorf("unexpected goal %v", profile["goal"])
	}
}
