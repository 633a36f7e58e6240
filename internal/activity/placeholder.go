package activity

import (
	"time"

	"github.com/napstack/napstack/internal/domain"
)

// placeholderEvents is the backdated feed shown before any real activity.
func placeholderEvents(now time.Time) []domain.ActivityEvent {
	return []domain.ActivityEvent{
		{
			ID:          "placeholder-3",
			Text:        "Someone's vibing to Coffee Shop ☕",
			Timestamp:   now.Add(-3 * time.Minute),
			Category:    domain.CategorySound,
			Placeholder: true,
		},
		{
			ID:          "placeholder-2",
			Text:        "Quick fix accomplished! ✅",
			Timestamp:   now.Add(-4 * time.Minute),
			Category:    domain.CategoryTimerComplete,
			Placeholder: true,
		},
		{
			ID:          "placeholder-1",
			Text:        "Someone started a naptime sprint! 💪",
			Timestamp:   now.Add(-5 * time.Minute),
			Category:    domain.CategoryTimerStart,
			Placeholder: true,
		},
	}
}
