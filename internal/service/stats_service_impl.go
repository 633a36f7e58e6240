package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/napstack/napstack/internal/clock"
	"github.com/napstack/napstack/internal/db"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/repository"
)

// streakHorizon bounds how far back RecordSession looks when recomputing
// the streak.
const streakHorizon = 366

type statsService struct {
	sessions repository.SessionLogRepo
	prefs    repository.PreferenceRepo
	uow      db.UnitOfWork
	clock    clock.Clock
	emit     domain.Emitter
	observer UseCaseObserver
}

// NewStatsService wires the stats use cases. emit receives the ship event
// and may be nil.
func NewStatsService(
	sessions repository.SessionLogRepo,
	prefs repository.PreferenceRepo,
	uow db.UnitOfWork,
	clk clock.Clock,
	emit domain.Emitter,
	observers ...UseCaseObserver,
) StatsService {
	if clk == nil {
		clk = clock.Real{}
	}
	if emit == nil {
		emit = func(string, domain.Category) {}
	}
	return &statsService{
		sessions: sessions,
		prefs:    prefs,
		uow:      uow,
		clock:    clk,
		emit:     emit,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statsService) Get(ctx context.Context) (domain.DailyStats, error) {
	return loadStats(ctx, s.prefs)
}

func (s *statsService) RecordSession(ctx context.Context, credit domain.SessionCredit) (stats domain.DailyStats, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"preset_minutes": credit.PresetMinutes,
		"minutes":        credit.Minutes,
		"outcome":        string(credit.Outcome),
	}
	defer observe(ctx, s.observer, "record-session", startedAt, fields, &err)

	if credit.Minutes <= 0 {
		return s.Get(ctx)
	}

	now := s.clock.Now()
	entry := &domain.SessionLog{
		ID:            uuid.New().String(),
		PresetMinutes: credit.PresetMinutes,
		CreditedMin:   credit.Minutes,
		Outcome:       credit.Outcome,
		StartedAt:     credit.StartedAt,
		EndedAt:       credit.EndedAt,
		CreatedAt:     now,
	}
	if entry.PresetMinutes <= 0 {
		entry.PresetMinutes = credit.Minutes
	}
	if entry.Outcome == "" {
		entry.Outcome = domain.OutcomeCompleted
	}
	if entry.EndedAt.IsZero() {
		entry.EndedAt = now
	}
	if entry.StartedAt.IsZero() {
		entry.StartedAt = entry.EndedAt.Add(-time.Duration(credit.Minutes) * time.Minute)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionLogRepo(tx)
		txPrefs := repository.NewSQLitePreferenceRepo(tx)

		if err := txSessions.Create(ctx, entry); err != nil {
			return err
		}

		current, err := loadStats(ctx, txPrefs)
		if err != nil {
			return err
		}
		current.ApplySession(credit.Minutes)

		recent, err := txSessions.ListSince(ctx, startOfDay(now).AddDate(0, 0, -streakHorizon))
		if err != nil {
			return err
		}
		days := make([]time.Time, 0, len(recent))
		for _, r := range recent {
			days = append(days, r.EndedAt)
		}
		current.Streak = domain.ComputeStreak(days, now)

		if err := saveStats(ctx, txPrefs, current); err != nil {
			return err
		}
		stats = current
		return nil
	})
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("recording session: %w", err)
	}
	fields["sessions"] = stats.Sessions
	return stats, nil
}

func (s *statsService) Ship(ctx context.Context) (stats domain.DailyStats, err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "ship", startedAt, nil, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrefs := repository.NewSQLitePreferenceRepo(tx)
		current, err := loadStats(ctx, txPrefs)
		if err != nil {
			return err
		}
		current.RecordShip()
		if err := saveStats(ctx, txPrefs, current); err != nil {
			return err
		}
		stats = current
		return nil
	})
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("recording ship: %w", err)
	}
	s.emit(domain.ShipCopy, domain.CategoryShip)
	return stats, nil
}

func (s *statsService) Today(ctx context.Context) (domain.TodaySummary, error) {
	logs, err := s.sessions.ListSince(ctx, startOfDay(s.clock.Now()))
	if err != nil {
		return domain.TodaySummary{}, err
	}
	var sum domain.TodaySummary
	for _, l := range logs {
		sum.Sessions++
		sum.Minutes += l.CreditedMin
	}
	return sum, nil
}

func (s *statsService) ListSessions(ctx context.Context, days int) ([]*domain.SessionLog, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	return s.sessions.ListSince(ctx, s.clock.Now().AddDate(0, 0, -days))
}

// loadStats reads the persisted counters. A missing or unreadable value
// yields the defaults.
func loadStats(ctx context.Context, prefs repository.PreferenceRepo) (domain.DailyStats, error) {
	raw, err := prefs.Get(ctx, repository.KeyStats)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultStats(), nil
	}
	if err != nil {
		return domain.DailyStats{}, err
	}
	stats := domain.DefaultStats()
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return domain.DefaultStats(), nil
	}
	return stats, nil
}

func saveStats(ctx context.Context, prefs repository.PreferenceRepo, stats domain.DailyStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	return prefs.Put(ctx, repository.KeyStats, string(raw))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
