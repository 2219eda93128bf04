package table

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	nt "searchbar/entity"
	"searchbar/message"
	"searchbar/query"
	"searchbar/style"
)

// Todo: handle columns overflow
// Todo: extend last column to edge of panel

const (
	headerHeight = 2
)

// TablePanel shows records as rows, one column per dotted path
type TablePanel struct {
	selected int // Absolute position of selected record
	offset   int // Offset of page shown

	width  int
	height int

	columns []nt.Column
	records []nt.Record
	table   *table.Table

	ctx    context.Context
	logger nt.Logger
}

func New(ctx context.Context, columns []nt.Column, lgr nt.Logger) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	pnl := TablePanel{
		table:  lgt,
		ctx:    ctx,
		logger: lgr,
	}

	return pnl.setColumns(columns)
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl.scroll()

	case RecordsMsg:
		pnl.records = msg.Records
		if pnl.selected >= len(pnl.records) {
			pnl.selected = max(0, len(pnl.records)-1)
		}
		pnl.scroll()
		return pnl, pnl.selectedCmd()

	case tea.KeyPressMsg:
		pageSize := max(1, pnl.PageSize())
		before := pnl.selected

		switch msg.String() {
		case "up":
			if pnl.selected > 0 {
				pnl.selected--
			}

		case "down":
			if pnl.selected < len(pnl.records)-1 {
				pnl.selected++
			}

		case "pgup":
			pnl.selected = max(0, pnl.selected-pageSize)

		case "pgdown":
			pnl.selected = max(0, min(len(pnl.records)-1, pnl.selected+pageSize))
		}

		if pnl.selected == before {
			return pnl, nil
		}

		pnl.scroll()
		return pnl, pnl.selectedCmd()
	}

	return pnl, nil
}

// Render renders the page of records holding the selection
func (pnl TablePanel) Render() string {

	pnl.table.StyleFunc(style.RowStyler(pnl.selected - pnl.offset))

	pnl.table.ClearRows()
	end := min(len(pnl.records), pnl.offset+max(0, pnl.PageSize()))
	for _, record := range pnl.records[min(pnl.offset, end):end] {
		pnl.table.Row(pnl.row(record)...)
	}

	return pnl.table.Render()
}

func (pnl TablePanel) View() tea.View {
	return tea.NewView(pnl.Render())
}

// Selected returns the record under the cursor
func (pnl TablePanel) Selected() (record nt.Record, ok bool) {

	if pnl.selected >= len(pnl.records) {
		return
	}
	return pnl.records[pnl.selected], true
}

// SelectedRow returns the 1-indexed position of the selection, 0 when empty
func (pnl TablePanel) SelectedRow() int {
	if len(pnl.records) == 0 {
		return 0
	}
	return pnl.selected + 1
}

// Total returns the number of records
func (pnl TablePanel) Total() int {
	return len(pnl.records)
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	return pnl.height - headerHeight
}

// unexported

// scroll adjusts offset to keep the selection visible
func (pnl *TablePanel) scroll() {

	pageSize := max(1, pnl.PageSize())
	if pnl.selected < pnl.offset {
		pnl.offset = pnl.selected
	} else if pnl.selected >= pnl.offset+pageSize {
		pnl.offset = pnl.selected - pageSize + 1
	}
	if pnl.offset > max(0, len(pnl.records)-pageSize) {
		pnl.offset = max(0, len(pnl.records)-pageSize)
	}
}

func (pnl TablePanel) selectedCmd() tea.Cmd {

	row := pnl.SelectedRow()
	return func() tea.Msg {
		return message.SelectedMsg{Row: row}
	}
}

func (pnl TablePanel) row(record nt.Record) []string {

	var row []string
	for _, col := range pnl.columns {
		if col.Hidden {
			continue
		}
		row = append(row, truncate(pnl.cell(record, col), col.Width))
	}
	return row
}

func (pnl TablePanel) cell(record nt.Record, col nt.Column) string {

	leaf, err := query.Resolve(record, col.Path)
	if err != nil {
		return ""
	}
	return makeFormatter(col.Format)(nt.Value{Raw: leaf})
}

func (pnl TablePanel) setColumns(columns []nt.Column) TablePanel {

	var headers []string
	for _, col := range columns {
		if col.Hidden {
			continue
		}
		padded := fmt.Sprintf("%-*s", col.Width+1, col.Heading())
		headers = append(headers, padded)
	}

	pnl.table.Headers(headers...)
	pnl.columns = columns

	return pnl
}

// help

func makeFormatter(format string) func(nt.Value) string {
	if format != "" {
		return func(val nt.Value) string {
			t, err := val.Time()
			if err == nil {
				return t.Format(format)
			}
			return val.String()
		}
	}

	return func(v nt.Value) string {
		return v.String()
	}
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
