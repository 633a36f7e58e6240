package formatter

import (
	"fmt"
	"strings"

	"github.com/napstack/napstack/internal/domain"
)

const volumeBarWidth = 10

// FormatMixer renders the ambient mixer panel. keys labels the catalog
// entries in order.
func FormatMixer(prefs domain.SoundPrefs, keys []string) string {
	var b strings.Builder

	for i, s := range domain.Sounds {
		key := ""
		if i < len(keys) {
			key = keys[i]
		}
		state := Dim("○ off")
		if prefs.IsActive(s.ID) {
			state = StyleGreen.Render("● on")
		}
		b.WriteString(fmt.Sprintf("%s %s %-12s %s\n", Dim("["+key+"]"), s.Icon, s.Name, state))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Volume %s %d%%\n",
		RenderCompactBar(float64(prefs.Volume)/100, volumeBarWidth, false), prefs.Volume))

	if playing := NowPlaying(prefs); playing != "" {
		b.WriteString(StyleHeader.Render("NOW PLAYING") + " " + playing + "\n")
	}
	return b.String()
}

// NowPlaying joins the active sound names in activation order.
func NowPlaying(prefs domain.SoundPrefs) string {
	names := make([]string, 0, len(prefs.Active))
	for _, id := range prefs.Active {
		if s, ok := domain.SoundByID(id); ok {
			names = append(names, s.Icon+" "+s.Name)
		}
	}
	return strings.Join(names, " + ")
}

// FormatSoundList renders the sound catalog with each channel's state.
func FormatSoundList(prefs domain.SoundPrefs) string {
	rows := make([][]string, 0, len(domain.Sounds))
	for _, s := range domain.Sounds {
		state := Dim("off")
		if prefs.IsActive(s.ID) {
			state = StyleGreen.Render("on")
		}
		source := s.Source
		if source == "" {
			source = Dim("(no audio)")
		}
		rows = append(rows, []string{s.ID, s.Icon + " " + Bold(s.Name), state, source})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "SOUND", "STATE", "SOURCE"}, rows))
	b.WriteString(fmt.Sprintf("\nVolume: %d%%\n", prefs.Volume))
	return b.String()
}
