package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/napstack/napstack/internal/audio"
	"github.com/napstack/napstack/internal/domain"
	"github.com/napstack/napstack/internal/repository"
)

type soundService struct {
	prefs    repository.PreferenceRepo
	player   audio.Player
	emit     domain.Emitter
	logger   *slog.Logger
	observer UseCaseObserver

	mu         sync.Mutex
	state      domain.SoundPrefs
	interacted bool
}

// NewSoundService wires the ambient mixer. Playback and save failures are
// logged to logger and never returned.
func NewSoundService(
	prefs repository.PreferenceRepo,
	player audio.Player,
	emit domain.Emitter,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) SoundService {
	if player == nil {
		player = audio.LogPlayer{Logger: logger}
	}
	if emit == nil {
		emit = func(string, domain.Category) {}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &soundService{
		prefs:    prefs,
		player:   player,
		emit:     emit,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		state:    domain.DefaultSoundPrefs(),
	}
}

func (s *soundService) Load(ctx context.Context) (domain.SoundPrefs, error) {
	state := domain.DefaultSoundPrefs()

	raw, err := s.prefs.Get(ctx, repository.KeySounds)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return s.Prefs(), fmt.Errorf("loading sounds: %w", err)
	default:
		if err := json.Unmarshal([]byte(raw), &state.Active); err != nil {
			s.logger.Warn("ignoring unreadable preference", "key", repository.KeySounds, "error", err.Error())
			state.Active = nil
		}
	}

	raw, err = s.prefs.Get(ctx, repository.KeyVolume)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return s.Prefs(), fmt.Errorf("loading volume: %w", err)
	default:
		if v, err := strconv.Atoi(raw); err == nil {
			state.Volume = v
		} else {
			s.logger.Warn("ignoring unreadable preference", "key", repository.KeyVolume, "error", err.Error())
		}
	}

	state.Sanitize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return cloneSoundPrefs(state), nil
}

func (s *soundService) Prefs() domain.SoundPrefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSoundPrefs(s.state)
}

func (s *soundService) Toggle(ctx context.Context, id string) (activated bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"sound": id}
	defer observe(ctx, s.observer, "toggle-sound", startedAt, fields, &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.firstInteractionLocked(id)
	activated, err = s.state.Toggle(id)
	if err != nil {
		return false, err
	}
	fields["active"] = activated

	if activated {
		s.playLocked(id)
		s.emit(domain.ActivationCopy(id, s.state.Active), domain.CategorySound)
	} else if err := s.player.Stop(id); err != nil {
		s.logger.Warn("audio stop failed", "sound", id, "error", err.Error())
	}

	s.saveLocked(ctx, repository.KeySounds)
	return activated, nil
}

func (s *soundService) SetVolume(ctx context.Context, volume int) (err error) {
	startedAt := time.Now()
	defer observe(ctx, s.observer, "set-volume", startedAt, map[string]any{"volume": volume}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	if volume == s.state.Volume {
		return nil
	}
	if err := s.state.SetVolume(volume); err != nil {
		return err
	}
	s.firstInteractionLocked("")
	if err := s.player.SetVolume(volume); err != nil {
		s.logger.Warn("audio volume change failed", "volume", volume, "error", err.Error())
	}
	s.saveLocked(ctx, repository.KeyVolume)
	return nil
}

func (s *soundService) Close() {
	s.player.StopAll()
}

// firstInteractionLocked resumes the saved channels on the first user
// action, except skip which the caller is about to toggle itself.
func (s *soundService) firstInteractionLocked(skip string) {
	if s.interacted {
		return
	}
	s.interacted = true
	for _, id := range s.state.Active {
		if id != skip {
			s.playLocked(id)
		}
	}
}

func (s *soundService) playLocked(id string) {
	snd, ok := domain.SoundByID(id)
	if !ok {
		return
	}
	if err := s.player.Play(snd, s.state.Volume); err != nil {
		if errors.Is(err, audio.ErrNoSource) {
			s.logger.Debug("sound has no audio yet", "sound", id)
			return
		}
		s.logger.Warn("audio playback failed", "sound", id, "error", err.Error())
	}
}

func (s *soundService) saveLocked(ctx context.Context, key string) {
	var value string
	switch key {
	case repository.KeySounds:
		active := s.state.Active
		if active == nil {
			active = []string{}
		}
		raw, err := json.Marshal(active)
		if err != nil {
			s.logger.Warn("encoding preference failed", "key", key, "error", err.Error())
			return
		}
		value = string(raw)
	case repository.KeyVolume:
		value = strconv.Itoa(s.state.Volume)
	}
	if err := s.prefs.Put(ctx, key, value); err != nil {
		s.logger.Warn("saving preference failed", "key", key, "error", err.Error())
	}
}

func cloneSoundPrefs(p domain.SoundPrefs) domain.SoundPrefs {
	p.Active = slices.Clone(p.Active)
	return p
}
