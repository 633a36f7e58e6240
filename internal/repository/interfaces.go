package repository

import (
	"context"
	"time"

	"github.com/napstack/napstack/internal/domain"
)

// Preference keys. Values are stored as text: JSON for structured values,
// decimal for integers.
const (
	KeyStats  = "napstack-stats"
	KeySounds = "napstack-sounds"
	KeyVolume = "napstack-volume"
)

type SessionLogRepo interface {
	Create(ctx context.Context, s *domain.SessionLog) error
	GetByID(ctx context.Context, id string) (*domain.SessionLog, error)
	// ListSince returns sessions that ended at or after since, newest first.
	ListSince(ctx context.Context, since time.Time) ([]*domain.SessionLog, error)
}

type PreferenceRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}
