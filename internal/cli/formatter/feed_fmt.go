package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/napstack/napstack/internal/domain"
)

// FeedView is everything the live feed panel shows.
type FeedView struct {
	Count  int
	HasNew bool
	Events []domain.ActivityEvent
	Now    time.Time
}

// FormatFeed renders the presence line followed by the visible events,
// each with its relative age.
func FormatFeed(v FeedView) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("●") + " " + Bold(fmt.Sprintf("%d", v.Count)) + " parents coding now")
	if v.HasNew {
		b.WriteString("  " + StyleRed.Bold(true).Render("NEW"))
	}
	b.WriteString("\n\n")

	if len(v.Events) == 0 {
		b.WriteString(Dim("Nothing yet."))
		b.WriteString("\n")
		return b.String()
	}
	for _, ev := range v.Events {
		b.WriteString(FormatEvent(ev, v.Now))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatEvent renders one feed line: the text colored by category, then its
// age. Placeholder events are dimmed.
func FormatEvent(ev domain.ActivityEvent, now time.Time) string {
	text := CategoryStyle(ev.Category).Render(ev.Text)
	if ev.Placeholder {
		text = Dim(ev.Text)
	}
	return text + "  " + Dim(RelativeAge(ev.Timestamp, now))
}

// FormatEventLine renders an event for plain line-oriented output, such as
// the headless run command.
func FormatEventLine(ev domain.ActivityEvent) string {
	return fmt.Sprintf("%s  %s", Dim(ev.Timestamp.Local().Format(time.TimeOnly)), CategoryStyle(ev.Category).Render(ev.Text))
}
