// Package audio plays the ambient mixer channels. Playback is best effort:
// callers log failures and carry on.
package audio

import (
	"errors"
	"log/slog"

	"github.com/napstack/napstack/internal/domain"
)

// ErrNoSource is returned for catalog entries without an audio file.
var ErrNoSource = errors.New("sound has no audio source")

// Player controls looping playback of mixer channels.
type Player interface {
	Play(s domain.Sound, volume int) error
	Stop(id string) error
	SetVolume(volume int) error
	StopAll()
}

// LogPlayer only logs what it would play. It is used when no audio backend
// is available.
type LogPlayer struct {
	Logger *slog.Logger
}

func (p LogPlayer) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p LogPlayer) Play(s domain.Sound, volume int) error {
	if s.Source == "" {
		return ErrNoSource
	}
	p.logger().Info("audio_play", "sound", s.ID, "source", s.Source, "volume", volume)
	return nil
}

func (p LogPlayer) Stop(id string) error {
	p.logger().Info("audio_stop", "sound", id)
	return nil
}

func (p LogPlayer) SetVolume(volume int) error {
	p.logger().Info("audio_volume", "volume", volume)
	return nil
}

func (p LogPlayer) StopAll() {
	p.logger().Info("audio_stop_all")
}
