package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownSound  = errors.New("unknown sound")
	ErrInvalidVolume = errors.New("volume must be between 0 and 100")
)

// Sound is one channel of the ambient mixer.
type Sound struct {
	ID     string
	Name   string
	Icon   string
	Source string // empty when no audio is available yet
}

// Sounds is the fixed mixer catalog.
var Sounds = []Sound{
	{ID: "coffee", Name: "Coffee Shop", Icon: "☕", Source: "coffee.mp3"},
	{ID: "rain", Name: "Rain", Icon: "🌧️", Source: "rain.mp3"},
	{ID: "fireplace", Name: "Fireplace", Icon: "🔥", Source: "fireplace.mp3"},
	{ID: "lofi", Name: "Lofi", Icon: "🎵"},
}

// SoundByID looks up a catalog entry.
func SoundByID(id string) (Sound, bool) {
	for _, s := range Sounds {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}

const DefaultVolume = 70

// SoundPrefs is the persisted mixer state. Active keeps activation order.
type SoundPrefs struct {
	Active []string
	Volume int
}

func DefaultSoundPrefs() SoundPrefs {
	return SoundPrefs{Volume: DefaultVolume}
}

// IsActive reports whether id is currently playing.
func (p *SoundPrefs) IsActive(id string) bool {
	for _, a := range p.Active {
		if a == id {
			return true
		}
	}
	return false
}

// Toggle flips a sound on or off and reports whether it was switched on.
func (p *SoundPrefs) Toggle(id string) (bool, error) {
	if _, ok := SoundByID(id); !ok {
		return false, fmt.Errorf("%q: %w", id, ErrUnknownSound)
	}
	if p.IsActive(id) {
		kept := p.Active[:0:0]
		for _, a := range p.Active {
			if a != id {
				kept = append(kept, a)
			}
		}
		p.Active = kept
		return false, nil
	}
	p.Active = append(p.Active, id)
	return true, nil
}

// SetVolume validates and stores a 0-100 volume.
func (p *SoundPrefs) SetVolume(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%d: %w", v, ErrInvalidVolume)
	}
	p.Volume = v
	return nil
}

// Sanitize drops unknown or duplicate ids and clamps the volume, so that
// whatever was persisted can be used safely.
func (p *SoundPrefs) Sanitize() {
	seen := make(map[string]bool, len(p.Active))
	kept := p.Active[:0:0]
	for _, id := range p.Active {
		if _, ok := SoundByID(id); ok && !seen[id] {
			seen[id] = true
			kept = append(kept, id)
		}
	}
	p.Active = kept
	if p.Volume < 0 {
		p.Volume = 0
	}
	if p.Volume > 100 {
		p.Volume = 100
	}
}

// ActivationCopy is the feed text emitted when a sound is switched on, given
// the active set after the toggle.
func ActivationCopy(activated string, active []string) string {
	s, ok := SoundByID(activated)
	if !ok {
		return ""
	}
	if len(active) <= 1 {
		return fmt.Sprintf("Someone's vibing to %s %s", s.Name, s.Icon)
	}
	names := make([]string, 0, len(active))
	for _, id := range active {
		if snd, ok := SoundByID(id); ok {
			names = append(names, snd.Name)
		}
	}
	return fmt.Sprintf("Coding to %s 🎵", strings.Join(names, " + "))
}
