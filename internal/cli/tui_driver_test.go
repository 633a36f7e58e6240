package cli

import (
	"testing"
	"time"

	"github.com/napstack/napstack/internal/teatest"
)

// TestDriver wraps teatest.Driver with NapStack-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// flash line) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
	app *App
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets a terminal size wide enough that the
// panels do not wrap, and drains Init() (which loads the stats panel
// synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(160, 50))
	d.DrainInit()

	return &TestDriver{Driver: d, app: app}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Tick advances the fake clock and delivers the dashboard tick the real
// program would have sent.
func (d *TestDriver) Tick(elapsed time.Duration) {
	d.T.Helper()
	clk := testClock(d.T, d.app)
	clk.Advance(elapsed)
	d.Send(tickMsg(clk.Now()))
}

// ── NapStack-specific inspection ─────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Flash returns the transient status line.
func (d *TestDriver) Flash() string {
	return teatest.StripANSI(d.appModel().flash)
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
