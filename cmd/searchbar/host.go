package main

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"searchbar"
	"searchbar/detail"
	nt "searchbar/entity"
	"searchbar/message"
	"searchbar/table"
)

const (
	barHeight    = 2
	footerHeight = 1
)

// host drives the search bar and shows its results in a table.
type host struct {
	search searchbar.Model
	table  table.TablePanel
	detail detail.DetailPanel

	filters  []nt.Descriptor
	records  []nt.Record
	filename string

	label    string
	errorMsg string

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

func newHost(ctx context.Context, cfg Config, filename string, records []nt.Record, lgr nt.Logger) host {

	return host{
		search:   searchbar.New(ctx, cfg.Search, lgr),
		table:    table.New(ctx, cfg.Columns, lgr),
		detail:   detail.New(),
		filters:  cfg.Filters,
		records:  records,
		filename: filename,
		ctx:      ctx,
		logger:   lgr,
	}
}

func (h host) Init() tea.Cmd {
	return h.configureCmd()
}

func (h host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd

	switch msg := msg.(type) {

	case searchbar.FilterResultMsg:
		h.label = msg.Descriptor.Label
		h.errorMsg = ""
		h.table, cmd = h.table.Update(table.RecordsMsg{Records: msg.Result.Collect()})
		return h, cmd

	case searchbar.DescriptorSelectedMsg:
		h.label = msg.Descriptor.Label
		return h, nil

	case message.SelectedMsg:
		record, _ := h.table.Selected()
		h.detail, cmd = h.detail.Update(detail.RecordMsg{Record: record})
		return h, cmd

	case message.ErrorMsg:
		h.logger.Error(h.ctx, "search failed", msg.Err)
		h.errorMsg = msg.Err.Error()
		return h, nil

	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		tableHeight, detailHeight := h.split()
		h.table, _ = h.table.Update(table.SizeMsg{Width: msg.Width, Height: tableHeight})
		h.detail, _ = h.detail.Update(detail.SizeMsg{Width: msg.Width, Height: detailHeight})

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return h, tea.Quit

		case "esc":
			if !h.search.DialogOpen() {
				return h, tea.Quit
			}

		case "ctrl+r":
			if !h.search.DialogOpen() {
				return h, h.configureCmd()
			}

		case "tab":
			if !h.search.DialogOpen() {
				h.detail.Focused = !h.detail.Focused
				return h, nil
			}

		case "up", "down", "pgup", "pgdown":
			if h.search.DialogOpen() {
				break
			}
			if h.detail.Focused {
				h.detail, cmd = h.detail.Update(msg)
				return h, cmd
			}
			h.table, cmd = h.table.Update(msg)
			return h, cmd
		}
	}

	h.search, cmd = h.search.Update(msg)
	return h, cmd
}

func (h host) View() tea.View {

	if h.width == 0 {
		return tea.NewView("Loading...")
	}

	footer := renderFooter(h.table.SelectedRow(), h.table.Total(), h.label, h.filename, h.width)
	if h.errorMsg != "" {
		footer = renderError(h.errorMsg, h.width)
	}

	canvas := lipgloss.NewCanvas(h.width, h.height)
	canvas.Compose(lipgloss.NewLayer("searchbar", h.search.Render()))
	tableHeight, _ := h.split()
	canvas.Compose(lipgloss.NewLayer("table", h.table.Render()).Y(barHeight))
	canvas.Compose(lipgloss.NewLayer("detail", h.detail.Render()).Y(barHeight + tableHeight))
	canvas.Compose(lipgloss.NewLayer("footer", footer).Y(max(0, h.height-footerHeight)))

	if h.search.DialogOpen() {
		content, x, y := h.search.RenderDialog()
		canvas.Compose(lipgloss.NewLayer("dialog", content).X(x).Y(y))
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// split divides the rows between the bar and footer among table and detail
func (h host) split() (tableHeight, detailHeight int) {

	rest := max(0, h.height-barHeight-footerHeight)
	tableHeight = rest * 3 / 5
	detailHeight = rest - tableHeight
	return
}

// configureCmd (re)initializes the search bar with the host's filters and records.
func (h host) configureCmd() tea.Cmd {

	return func() tea.Msg {
		return searchbar.ConfigureMsg{Descriptors: h.filters, Records: h.records}
	}
}
