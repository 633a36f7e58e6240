package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/napstack/napstack/internal/domain"
)

var styleBanner = lipgloss.NewStyle().
	Foreground(ColorHeader).
	Bold(true).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorPurple).
	Padding(0, 2)

// FormatStats renders the cumulative counters with today's totals below.
func FormatStats(s domain.DailyStats, today domain.TodaySummary) string {
	cells := []string{
		statCell(s.Sessions, "sessions", StyleGreen),
		statCell(s.TotalMinutes, "minutes", StyleGreen),
		statCell(s.Ships, "ships", StyleRed),
		statCell(s.Streak, "day streak", StyleYellow),
	}

	var b strings.Builder
	b.WriteString(strings.Join(cells, "   "))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Today: %d %s, %s", today.Sessions, plural(today.Sessions, "session"), FormatMinutes(today.Minutes))))
	b.WriteString("\n")
	return b.String()
}

func statCell(n int, label string, style lipgloss.Style) string {
	return style.Bold(true).Render(fmt.Sprintf("%d", n)) + " " + Dim(label)
}

// FormatSessions renders the session history as a table, newest first.
func FormatSessions(logs []*domain.SessionLog, now time.Time) string {
	if len(logs) == 0 {
		return Dim("No sessions logged yet.") + "\n"
	}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		outcome := StyleGreen.Render("completed")
		if l.Outcome == domain.OutcomeEndedEarly {
			outcome = StyleYellow.Render("ended early")
		}
		preset := FormatMinutes(l.PresetMinutes)
		if p, ok := domain.PresetFor(l.PresetMinutes); ok {
			preset = p.Emoji + " " + p.Name
		}
		rows = append(rows, []string{
			TruncID(l.ID),
			HumanDate(l.EndedAt, now),
			l.StartedAt.In(now.Location()).Format("15:04"),
			preset,
			FormatMinutes(l.CreditedMin),
			outcome,
		})
	}
	return RenderTable([]string{"ID", "DATE", "START", "PRESET", "CREDITED", "OUTCOME"}, rows)
}

// FormatCelebration renders the banner shown while a celebration is active.
func FormatCelebration(text string) string {
	return styleBanner.Render("🎉 " + text + " 🎉")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
