package services

import (
	"context"
	"time"
)

// progressTopics are the streams whose changes invalidate a weekly digest.
var progressTopics = []string{
	TopicWorkoutSessions,
	TopicWaterIntake,
	TopicMealPlans,
	TopicWorkoutPlans,
}

// ProgressFeed drives one subscriber's live digest: recompute on change
// notifications for the user, plus a periodic fallback in case a
// notification is missed.
type ProgressFeed struct {
	weekly   *WeeklyService
	bus      *EventBus
	interval time.Duration
}

func NewProgressFeed(weekly *WeeklyService) *ProgressFeed {
	return &ProgressFeed{weekly: weekly, bus: Bus, interval: 5 * time.Minute}
}

func NewProgressFeedWith(weekly *WeeklyService, bus *EventBus, interval time.Duration) *ProgressFeed {
	return &ProgressFeed{weekly: weekly, bus: bus, interval: interval}
}

// Run sends an initial digest, then a fresh one after every relevant change
// event and on each fallback tick, until ctx is cancelled or send fails.
// Subscriptions and the ticker are released on every exit path.
func (f *ProgressFeed) Run(ctx context.Context, userID uint, loc *time.Location, send func(WeekData) error) error {
	trigger := make(chan struct{}, 1) // coalesces bursts of notifications

	subs := make([]*Subscription, 0, len(progressTopics))
	for _, topic := range progressTopics {
		subs = append(subs, f.bus.Subscribe(topic, func(e Event) {
			if e.UserID != userID {
				return
			}
			select {
			case trigger <- struct{}{}:
			default:
			}
		}))
	}
	defer func() {
		for _, sub := range subs {
			f.bus.Unsubscribe(sub)
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		digest, err := f.weekly.Digest(ctx, userID, time.Now(), loc)
		if err != nil {
			return err
		}
		if err := send(digest); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-trigger:
		case <-ticker.C:
		}
	}
}
