package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayPartFor(t *testing.T) {
	cases := []struct {
		hour int
		want DayPart
	}{
		{0, Night},
		{4, Night},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{21, Evening},
		{22, Night},
		{23, Night},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DayPartFor(tc.hour), "hour=%d", tc.hour)
	}
}

func TestRotationMessages_BucketThenMotivational(t *testing.T) {
	pool := RotationMessages(9)
	assert.Len(t, pool, 14)
	assert.Equal(t, "Good morning, parent coder! ☀️", pool[0])
	assert.Equal(t, "You've got this! 💪", pool[4])
	assert.NotContains(t, pool, "Late night session? 🌙")

	assert.Contains(t, RotationMessages(2), "Late night session? 🌙")
}

func TestMilestoneMessage(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{4, ""},
		{5, "5 minutes in the zone! 🎯"},
		{10, "10 minutes in the zone! 🎯"},
		{15, "15 mins of solid progress! 📈"},
		{30, "30 minutes of flow state! 🌊"},
		{45, "45 mins of coding zen! 🧘"},
		{60, "60 minutes of pure focus! 🔥"},
		{85, "85 minutes of pure focus! 🔥"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MilestoneMessage(tc.minutes), "minutes=%d", tc.minutes)
	}
}
