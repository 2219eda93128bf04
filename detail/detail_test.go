package detail

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record() map[string]any {
	return map[string]any{
		"address": map[string]any{
			"city": "London",
		},
	}
}

func TestRecordLines(t *testing.T) {

	pnl, cmd := New().Update(RecordMsg{Record: record()})
	assert.Nil(t, cmd)

	assert.Equal(t, []string{
		"{",
		`  "address": {`,
		`    "city": "London"`,
		"  }",
		"}",
	}, pnl.Lines())
	assert.Equal(t, record(), pnl.Record())
}

func TestClear(t *testing.T) {

	pnl, _ := New().Update(RecordMsg{Record: record()})
	pnl, _ = pnl.Update(RecordMsg{})

	assert.Nil(t, pnl.Lines())
	assert.Contains(t, pnl.Render(), empty)
}

func TestScroll(t *testing.T) {

	pnl, _ := New().Update(SizeMsg{Width: 40, Height: 3})
	pnl, _ = pnl.Update(RecordMsg{Record: record()})
	require.Len(t, pnl.Lines(), 5)

	down := tea.KeyPressMsg{Code: tea.KeyDown}

	pnl, _ = pnl.Update(down)
	assert.Equal(t, 0, pnl.Offset(), "ignores keys unless focused")

	pnl.Focused = true
	for range 5 {
		pnl, _ = pnl.Update(down)
	}
	assert.Equal(t, 3, pnl.Offset(), "stops with the last line at the bottom")

	rendered := pnl.Render()
	assert.Contains(t, rendered, "  }")
	assert.NotContains(t, rendered, "address")

	pnl, _ = pnl.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	assert.Equal(t, 1, pnl.Offset())

	pnl, _ = pnl.Update(RecordMsg{Record: record()})
	assert.Equal(t, 0, pnl.Offset(), "new record starts at the top")
}
