package searchbar

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"searchbar/dialog"
	nt "searchbar/entity"
	"searchbar/input"
	"searchbar/message"
	"searchbar/query"
	"searchbar/style"
)

const (
	funnel = "⏷"
)

// Model is the bubbletea search bar: a text input, a filter selector when more
// than one descriptor is configured, and the dialog to pick the active one.
// Filtered records go to the host as FilterResultMsg.
//
// Model is embedded in a host model, which forwards messages to Update and
// places Render and RenderDialog on its own screen.
type Model struct {
	bar    Bar
	input  input.TextInput
	dialog dialog.Dialog
	cfg    Config

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New creates a search bar. It filters nothing until it receives a ConfigureMsg.
func New(ctx context.Context, cfg Config, lgr nt.Logger) Model {

	err := cfg.ApplyDefaults()
	if err != nil {
		lgr.Error(ctx, "continuing without defaults", err)
	}

	return Model{
		bar:    NewBar(cfg.ResultMode, query.Evaluator{}),
		input:  input.New("", cfg.MaxLength),
		dialog: dialog.New(cfg.Dialog),
		cfg:    cfg,
		ctx:    ctx,
		logger: lgr,
	}
}

// WithEvaluator swaps the evaluator, typically to pin the date location.
func (m Model) WithEvaluator(ev query.Evaluator) Model {
	m.bar.evaluator = ev
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {

	switch msg := msg.(type) {

	case ConfigureMsg:
		return m.configure(msg)

	case dialog.ChosenMsg:
		return m.choose(msg.Index)

	case dialog.CanceledMsg:
		m.dialog = m.dialog.Close()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dialog, _ = m.dialog.Update(dialog.SizeMsg{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// Query returns the text typed so far.
func (m Model) Query() string {
	return m.input.Value()
}

// Active returns the active descriptor, if configured.
func (m Model) Active() (nt.Descriptor, bool) {
	return m.bar.Active()
}

// Last returns the last published result.
func (m Model) Last() Result {
	return m.bar.Last()
}

// DialogOpen reports whether the selection dialog is showing.
func (m Model) DialogOpen() bool {
	return m.dialog.Open()
}

// Render renders the bar line.
func (m Model) Render() string {

	var line strings.Builder

	if len(m.bar.descriptors) > 1 {
		line.WriteString(style.FunnelStyle.Render(funnel) + " ")
	}

	if m.input.Value() == "" {
		placeholder := m.cfg.Placeholder
		if dsc, ok := m.bar.Active(); ok {
			placeholder += dsc.Label
		}
		line.WriteString(style.CursorStyle.Render(" ") + style.MutedStyle.Render(placeholder))
	} else {
		line.WriteString(m.input.Render())
	}

	barStyle := style.BarStyle
	if m.width > 0 {
		barStyle = barStyle.Width(m.width)
	}
	return barStyle.Render(line.String())
}

// RenderDialog renders the selection dialog and where to put it so it is centred.
func (m Model) RenderDialog() (content string, x, y int) {

	content = m.dialog.Render()
	x, y = m.dialog.Position(m.width, m.height)
	return
}

func (m Model) View() tea.View {

	if !m.dialog.Open() {
		return tea.NewView(m.Render())
	}

	content, x, y := m.RenderDialog()

	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(lipgloss.NewLayer("searchbar", m.Render()))
	canvas.Compose(lipgloss.NewLayer("dialog", content).X(x).Y(y))

	return tea.NewView(canvas)
}

// unexported

func (m Model) configure(msg ConfigureMsg) (Model, tea.Cmd) {

	m.input = m.input.Reset()
	m.dialog = m.dialog.Close()

	res, err := m.bar.Configure(msg.Descriptors, msg.Records)
	if err != nil {
		m.logger.Error(m.ctx, "could not initialize search bar, send at least one filter descriptor", err)
		return m, message.ErrorCmd(err)
	}

	m.logger.Info(m.ctx, "search bar configured", "descriptors", len(msg.Descriptors), "records", len(msg.Records))
	return m, m.resultCmd(res)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	if m.dialog.Open() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	if !m.bar.Initialized() {
		return m, nil
	}

	if msg.String() == "ctrl+f" {
		return m.openDialog(), nil
	}

	var changed bool
	m.input, changed = m.input.Update(msg)
	if !changed {
		return m, nil
	}

	res, err := m.bar.SetQuery(m.input.Value())
	if err != nil {
		return m, message.ErrorCmd(err)
	}
	return m, m.resultCmd(res)
}

func (m Model) openDialog() Model {

	descriptors := m.bar.descriptors
	if len(descriptors) < 2 {
		return m
	}

	labels := make([]string, len(descriptors))
	for i, dsc := range descriptors {
		labels[i] = dsc.Label
	}

	m.dialog = m.dialog.Show(labels, m.bar.ActiveIndex())
	return m
}

func (m Model) choose(index int) (Model, tea.Cmd) {

	m.dialog = m.dialog.Close()

	res, chosen, err := m.bar.Select(index)
	if !chosen {
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		return m, nil
	}

	dsc, _ := m.bar.Active()
	m.logger.Info(m.ctx, "filter selected", "label", dsc.Label, "path", dsc.Path)

	if err != nil {
		return m, tea.Batch(message.ErrorCmd(err), m.selectedCmd())
	}
	return m, tea.Batch(m.resultCmd(res), m.selectedCmd())
}
