package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Armand9999/fitness-app/models"
)

// GeneratorService asks the generative provider for structured daily plans.
// It speaks the OpenAI chat-completions wire shape so any compatible
// endpoint works (OPENAI_BASE_URL overrides the default host).
type GeneratorService struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func NewGeneratorService() *GeneratorService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4"
	}
	return &GeneratorService{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   os.Getenv("OPENAI_API_KEY"),
		model:   model,
	}
}

// Exercise is one entry of a generated workout. Sets/reps or duration may be
// absent depending on the exercise type.
type Exercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets,omitempty"`
	Reps         string `json:"reps,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Rest         string `json:"rest,omitempty"`
	Instructions string `json:"instructions"`
}

type WorkoutPlanData struct {
	WorkoutType string     `json:"workout_type"`
	Difficulty  string     `json:"difficulty"`
	Exercises   []Exercise `json:"exercises"`
}

type MealSet struct {
	Breakfast string `json:"Breakfast"`
	Lunch     string `json:"Lunch"`
	Dinner    string `json:"Dinner"`
	Snacks    string `json:"Snacks"`
}

type MealPlanData struct {
	Meals MealSet `json:"Meals"`
}

// GenerateWorkout builds a duration-bounded bodyweight workout. Missing
// profile fields fall back to sensible defaults; workout generation never
// needs an energy estimate.
func (g *GeneratorService) GenerateWorkout(ctx context.Context, user *models.User, durationMinutes int) (*WorkoutPlanData, error) {
	goal := user.Goal
	if goal == "" {
		goal = models.GoalStayFit
	}
	gender := user.Gender
	if gender == "" {
		gender = "male"
	}
	age := user.Age
	if age == 0 {
		age = 30
	}
	activity := user.ActivityLevel
	if activity == "" {
		activity = models.ActivityModeratelyActive
	}

	prompt := fmt.Sprintf(`Create a personalized %d-minute workout plan based on:

User Profile:
- Goal: %s
- Gender: %s
- Age: %d
- Activity Level: %s

Return ONLY a valid JSON object:
{
  "workout_type": "cardio|strength|full_body|flexibility",
  "difficulty": "beginner|intermediate|advanced",
  "exercises": [
    {
      "name": "Exercise name",
      "sets": 3,
      "reps": "10-12",
      "duration": "30 seconds",
      "rest": "30 seconds",
      "instructions": "Brief how-to"
    }
  ]
}

Make it bodyweight-only, realistic for the duration, and match the user's fitness goal.`,
		durationMinutes, goal, gender, age, activity)

	content, err := g.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan WorkoutPlanData
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &plan); err != nil {
		return nil, fmt.Errorf("%w: unparseable workout payload: %v", models.ErrGenerationFailed, err)
	}
	if plan.WorkoutType == "" || plan.Difficulty == "" || len(plan.Exercises) == 0 {
		return nil, fmt.Errorf("%w: workout payload missing required fields", models.ErrGenerationFailed)
	}
	for _, ex := range plan.Exercises {
		if ex.Name == "" {
			return nil, fmt.Errorf("%w: exercise without a name", models.ErrGenerationFailed)
		}
	}
	return &plan, nil
}

// GenerateMeal builds a one-day meal plan around the user's latest energy
// estimate. The returned target is the estimate adjusted for the user's goal.
func (g *GeneratorService) GenerateMeal(ctx context.Context, user *models.User, estimate *models.EnergyEstimate) (*MealPlanData, int, error) {
	if estimate == nil {
		return nil, 0, models.ErrMissingEstimate
	}
	goal := user.Goal
	if goal == "" {
		goal = models.GoalStayFit
	}
	target := CalorieTarget(estimate.Value, goal)

	prompt := fmt.Sprintf(`Create a personalized one-day meal plan based on the following profile:

User Profile:
- Goal: %s
- Gender: %s
- Weight: %.1f kg
- Height: %.1f cm
- Activity Level: %s
- TDEE: %d calories
- Calorie Target: %d calories

Return ONLY a valid JSON object with this exact structure:
{
  "Meals": {
    "Breakfast": "specific meal with portions",
    "Lunch": "specific meal with portions",
    "Dinner": "specific meal with portions",
    "Snacks": "specific snacks with portions"
  }
}

Ensure meals are balanced, realistic, and align with the user's fitness goal and caloric needs.`,
		goal, user.Gender, user.WeightKg, user.HeightCm, user.ActivityLevel, estimate.Value, target)

	content, err := g.complete(ctx, prompt)
	if err != nil {
		return nil, 0, err
	}

	var plan MealPlanData
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &plan); err != nil {
		return nil, 0, fmt.Errorf("%w: unparseable meal payload: %v", models.ErrGenerationFailed, err)
	}
	m := plan.Meals
	if m.Breakfast == "" || m.Lunch == "" || m.Dinner == "" || m.Snacks == "" {
		return nil, 0, fmt.Errorf("%w: meal payload missing required meals", models.ErrGenerationFailed)
	}
	return &plan, target, nil
}

// CalorieTarget adjusts a TDEE for the user's fitness goal.
func CalorieTarget(tdee int, goal string) int {
	switch goal {
	case models.GoalLoseWeight:
		return tdee - 500
	case models.GoalBuildMuscle:
		return tdee + 300
	default:
		return tdee
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs one chat-completion round trip. Network failures and
// 429/5xx responses get a single retry with backoff; anything the provider
// answers with a well-formed error is not retried here — schema problems are
// the caller's to surface as generation failures.
func (g *GeneratorService) complete(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		Temperature: 0.7,
	})

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(500 * time.Millisecond):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", models.ErrProviderUnavailable, ctx.Err())
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrProviderUnavailable, err)
		}
		req.Header.Set("Authorization", "Bearer "+g.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			lastErr = err
			continue // transient: retry once
		}
		respBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("provider status %d: %s", resp.StatusCode, truncate(respBytes, 200))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: provider status %d: %s",
				models.ErrProviderUnavailable, resp.StatusCode, truncate(respBytes, 200))
		}

		var out chatResponse
		if err := json.Unmarshal(respBytes, &out); err != nil {
			return "", fmt.Errorf("%w: bad provider envelope: %v", models.ErrGenerationFailed, err)
		}
		if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
			return "", fmt.Errorf("%w: empty completion", models.ErrGenerationFailed)
		}
		return out.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("%w: %v", models.ErrProviderUnavailable, lastErr)
}

// stripCodeFence removes a surrounding markdown fence some models insist on
// wrapping JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
