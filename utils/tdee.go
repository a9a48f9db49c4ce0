package utils

import (
	"fmt"
	"math"

	"github.com/Armand9999/fitness-app/models"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier. Single
// source of truth for valid levels — also used by profile validation.
var ActivityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtraActive:      1.9,
}

// EstimateTDEE computes total daily energy expenditure in kcal/day from
// anthropometric inputs using Mifflin-St Jeor:
//
//	BMR = 10*weight + 6.25*height - 5*age + (5 male / -161 female)
//
// scaled by the activity multiplier and rounded half away from zero.
// Pure and deterministic; invalid inputs fail before any computation.
func EstimateTDEE(weightKg, heightCm, ageYears float64, gender, activityLevel string) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive", models.ErrInvalidInput)
	}
	if gender != "male" && gender != "female" {
		return 0, fmt.Errorf("%w: gender must be \"male\" or \"female\"", models.ErrInvalidInput)
	}
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", models.ErrInvalidInput, activityLevel)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	return int(math.Round(bmr * mult)), nil
}
