package main

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbar"
	"searchbar/dialog"
	nt "searchbar/entity"
	"searchbar/message"
)

func people() []nt.Record {
	return []nt.Record{
		map[string]any{"name": "Ada Lovelace", "address": map[string]any{"city": "London"}},
		map[string]any{"name": "Grace Hopper", "address": map[string]any{"city": "New York"}},
		map[string]any{"name": "Alan Turing", "address": map[string]any{"city": "Wilmslow"}},
	}
}

func testConfig() Config {
	cfg := Config{
		Filters: []nt.Descriptor{
			{Label: "Name", Path: "name"},
			{Label: "City", Path: "address.city"},
		},
	}
	cfg.SetDefaults()
	return cfg
}

// step feeds msg to the host along with every message its commands produce
func step(t *testing.T, mdl tea.Model, msg tea.Msg) host {
	t.Helper()

	mdl, cmd := mdl.Update(msg)
	for _, msg := range collect(cmd) {
		mdl = step(t, mdl, msg)
	}

	h, ok := mdl.(host)
	require.True(t, ok)
	return h
}

func collect(cmd tea.Cmd) (msgs []tea.Msg) {
	if cmd == nil {
		return
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			msgs = append(msgs, collect(cmd)...)
		}
		return
	}
	return append(msgs, msg)
}

func typed(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func started(t *testing.T, cfg Config, records []nt.Record) host {
	t.Helper()

	h := newHost(context.Background(), cfg, "people.ndjson", records, nt.Discard{})
	h = step(t, h, tea.WindowSizeMsg{Width: 80, Height: 24})

	msgs := collect(h.Init())
	require.Len(t, msgs, 1)
	require.IsType(t, searchbar.ConfigureMsg{}, msgs[0])

	return step(t, h, msgs[0])
}

func TestHostStart(t *testing.T) {

	h := started(t, testConfig(), people())

	assert.Equal(t, 3, h.table.Total())
	assert.Equal(t, 1, h.table.SelectedRow())
	assert.Equal(t, "Name", h.label)
	assert.Empty(t, h.errorMsg)
}

func TestHostTyping(t *testing.T) {

	h := started(t, testConfig(), people())

	h = step(t, h, typed("l"))
	assert.Equal(t, 2, h.table.Total())

	h = step(t, h, typed("o"))
	assert.Equal(t, 1, h.table.Total())
	assert.Equal(t, "lo", h.search.Query())
}

func TestHostSelectFilter(t *testing.T) {

	h := started(t, testConfig(), people())
	h = step(t, h, typed("l"))
	h = step(t, h, typed("o"))

	h = step(t, h, tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	require.True(t, h.search.DialogOpen())

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, h.table.Total(), "arrows belong to the dialog while it is open")

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, h.search.DialogOpen())
	assert.Equal(t, "City", h.label)
	assert.Equal(t, 2, h.table.Total())
}

func TestHostTableKeys(t *testing.T) {

	h := started(t, testConfig(), people())

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyDown})
	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, h.table.SelectedRow())
	assert.Equal(t, "", h.search.Query())

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, h.table.SelectedRow())
}

func TestHostDetail(t *testing.T) {

	h := started(t, testConfig(), people())
	assert.Equal(t, people()[0], h.detail.Record())

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, people()[1], h.detail.Record())

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyTab})
	require.True(t, h.detail.Focused)

	h = step(t, h, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, h.table.SelectedRow(), "arrows scroll the detail while it has focus")

	h = step(t, h, typed("z"))
	assert.Nil(t, h.detail.Record())
}

func TestHostReconfigure(t *testing.T) {

	h := started(t, testConfig(), people())
	h = step(t, h, typed("z"))
	assert.Equal(t, 0, h.table.Total())

	h = step(t, h, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	assert.Equal(t, 3, h.table.Total())
	assert.Equal(t, "", h.search.Query())
}

func TestHostError(t *testing.T) {

	cfg := testConfig()
	cfg.Filters = []nt.Descriptor{{Label: "Born", Path: "born", Kind: nt.Date}}

	h := started(t, cfg, people())
	assert.Equal(t, 3, h.table.Total())

	h = step(t, h, typed("x"))
	assert.Contains(t, h.errorMsg, `cannot parse "x" as a date`)
	assert.Equal(t, 3, h.table.Total(), "failed pass keeps the last result")
}

func TestHostNoFilters(t *testing.T) {

	cfg := testConfig()
	cfg.Filters = nil

	h := started(t, cfg, people())
	assert.NotEmpty(t, h.errorMsg)
	assert.Equal(t, 0, h.table.Total())
}

func TestHostQuit(t *testing.T) {

	h := started(t, testConfig(), people())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	h = step(t, h, tea.KeyPressMsg{Code: 'f', Mod: tea.ModCtrl})
	require.True(t, h.search.DialogOpen())

	mdl, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, dialog.CanceledMsg{}, msgs[0], "esc closes the dialog instead of quitting")

	h = step(t, mdl, msgs[0])
	assert.False(t, h.search.DialogOpen())
	assert.Equal(t, 3, h.table.Total())
}

func TestHostErrorMsg(t *testing.T) {

	h := started(t, testConfig(), people())
	h = step(t, h, message.ErrorMsg{Err: assert.AnError})

	assert.Equal(t, assert.AnError.Error(), h.errorMsg)
}

func TestRenderFooter(t *testing.T) {

	footer := renderFooter(2, 3, "Name", "people.ndjson", 60)

	assert.Contains(t, footer, "2/3  by Name")
	assert.Contains(t, footer, "people.ndjson")
}

func TestSetDefaults(t *testing.T) {

	cfg := testConfig()
	require.Len(t, cfg.Columns, 2)
	assert.Equal(t, nt.Column{Path: "address.city", Title: "City", Width: 20}, cfg.Columns[1])

	cfg = Config{Columns: []nt.Column{{Path: "name"}}, Filters: testConfig().Filters}
	cfg.SetDefaults()
	assert.Len(t, cfg.Columns, 1)
}
