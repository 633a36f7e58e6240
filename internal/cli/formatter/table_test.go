package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"ID", "SOUND"},
		[][]string{{"coffee", "Coffee Shop"}, {"rain", StyleGreen.Render("Rain")}},
	))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID      SOUND", lines[0])
	assert.Equal(t, "──────  ───────────", lines[1])
	assert.Equal(t, "coffee  Coffee Shop", lines[2])
	assert.Equal(t, "rain    Rain", lines[3])
}

func TestRenderTable_ShortRowsAndNoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))

	got := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Contains(t, got, "only")
}
