package service

import (
	"context"

	"github.com/napstack/napstack/internal/domain"
)

type StatsService interface {
	Get(ctx context.Context) (domain.DailyStats, error)
	// RecordSession logs a credited session and bumps the counters in one
	// transaction. Credits of zero minutes are ignored.
	RecordSession(ctx context.Context, credit domain.SessionCredit) (domain.DailyStats, error)
	Ship(ctx context.Context) (domain.DailyStats, error)
	Today(ctx context.Context) (domain.TodaySummary, error)
	ListSessions(ctx context.Context, days int) ([]*domain.SessionLog, error)
}

type SoundService interface {
	// Load reads the saved mixer state without starting playback.
	Load(ctx context.Context) (domain.SoundPrefs, error)
	Prefs() domain.SoundPrefs
	Toggle(ctx context.Context, id string) (bool, error)
	SetVolume(ctx context.Context, volume int) error
	Close()
}
