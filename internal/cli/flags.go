package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/napstack/napstack/internal/domain"
	"github.com/spf13/pflag"
)

// presetValue is a --preset flag accepting a preset name ("naptime-sprint",
// "Quick Fix") or its catalog number.
type presetValue struct {
	preset domain.Preset
	set    bool
}

var _ pflag.Value = (*presetValue)(nil)

func (v *presetValue) String() string {
	if !v.set {
		return ""
	}
	return v.preset.Name
}

func (v *presetValue) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(domain.Presets) {
			return fmt.Errorf("preset number must be between 1 and %d", len(domain.Presets))
		}
		v.preset, v.set = domain.Presets[n-1], true
		return nil
	}
	p, ok := domain.PresetByName(s)
	if !ok {
		return fmt.Errorf("unknown preset %q (want one of: %s)", s, presetNames())
	}
	v.preset, v.set = p, true
	return nil
}

func (v *presetValue) Type() string { return "preset" }

func presetNames() string {
	names := make([]string, 0, len(domain.Presets))
	for _, p := range domain.Presets {
		names = append(names, strings.ToLower(strings.ReplaceAll(p.Name, " ", "-")))
	}
	return strings.Join(names, ", ")
}

// validateMinutes accepts a whole number of minutes in [1, maxSessionMinutes].
func validateMinutes(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	if v > maxSessionMinutes {
		return fmt.Errorf("sessions are at most %d minutes", maxSessionMinutes)
	}
	return nil
}

// maxSessionMinutes caps custom durations at a full day.
const maxSessionMinutes = 24 * 60
