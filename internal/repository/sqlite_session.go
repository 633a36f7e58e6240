package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/napstack/napstack/internal/db"
	"github.com/napstack/napstack/internal/domain"
)

const sessionColumns = `id, preset_minutes, credited_min, outcome, started_at, ended_at, created_at`

// SQLiteSessionLogRepo implements SessionLogRepo using a SQLite database.
type SQLiteSessionLogRepo struct {
	db db.DBTX
}

// NewSQLiteSessionLogRepo creates a repo over a *sql.DB or a transaction.
func NewSQLiteSessionLogRepo(conn db.DBTX) *SQLiteSessionLogRepo {
	return &SQLiteSessionLogRepo{db: conn}
}

func (r *SQLiteSessionLogRepo) Create(ctx context.Context, s *domain.SessionLog) error {
	query := `INSERT INTO session_logs (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.PresetMinutes,
		s.CreditedMin,
		string(s.Outcome),
		formatTime(s.StartedAt),
		formatTime(s.EndedAt),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session log: %w", err)
	}
	return nil
}

func (r *SQLiteSessionLogRepo) GetByID(ctx context.Context, id string) (*domain.SessionLog, error) {
	query := `SELECT ` + sessionColumns + ` FROM session_logs WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session log %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionLogRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.SessionLog, error) {
	query := `SELECT ` + sessionColumns + ` FROM session_logs
		WHERE ended_at >= ?
		ORDER BY ended_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(since))
	if err != nil {
		return nil, fmt.Errorf("listing session logs: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.SessionLog
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session logs: %w", err)
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.SessionLog, error) {
	var s domain.SessionLog
	var outcome, startedAt, endedAt, createdAt string
	if err := row.Scan(&s.ID, &s.PresetMinutes, &s.CreditedMin, &outcome, &startedAt, &endedAt, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session log: %w", err)
	}
	s.Outcome = domain.SessionOutcome(outcome)

	var err error
	if s.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if s.EndedAt, err = parseTime(endedAt, "ended_at"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &s, nil
}
