package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetFor(t *testing.T) {
	p, ok := PresetFor(45)
	require.True(t, ok)
	assert.Equal(t, "Naptime Sprint", p.Name)

	_, ok = PresetFor(7)
	assert.False(t, ok)
}

func TestPresetByName(t *testing.T) {
	cases := map[string]int{
		"Quick Fix":       5,
		"quickfix":        5,
		"focus-block":     20,
		" naptime_sprint": 45,
		"NIGHT OWL":       90,
	}
	for name, minutes := range cases {
		p, ok := PresetByName(name)
		require.True(t, ok, "name=%q", name)
		assert.Equal(t, minutes, p.Minutes)
	}

	_, ok := PresetByName("power nap")
	assert.False(t, ok)
}

func TestStartCopy(t *testing.T) {
	assert.Equal(t, "Quick fix mode activated! ⚡", StartCopy(5))
	assert.Equal(t, "Night owl session begun! 🦉", StartCopy(90))
	assert.Equal(t, "Someone started a 25-minute session! ⏱️", StartCopy(25))
}

func TestCompleteCopy(t *testing.T) {
	assert.Equal(t, "Focus block completed! ⏰", CompleteCopy(20))
	assert.Equal(t, "A parent completed a naptime sprint! 🎉", CompleteCopy(45))
	assert.Equal(t, "A parent finished a 12-minute session! 🎉", CompleteCopy(12))
}

func TestEarlyCopy_Pluralizes(t *testing.T) {
	assert.Equal(t, "Parent ended early but still got 1 min! 💪", EarlyCopy(1))
	assert.Equal(t, "Parent ended early but still got 44 mins! 💪", EarlyCopy(44))
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryShip, NormalizeCategory(CategoryShip))
	assert.Equal(t, CategoryGeneral, NormalizeCategory(""))
	assert.Equal(t, CategoryGeneral, NormalizeCategory("confetti"))
}
