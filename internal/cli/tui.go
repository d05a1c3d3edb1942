package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/extract"
	pio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/layout"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/render/styles"
	"github.com/matzehuels/orgchart/pkg/store"
)

// Editor styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)
	inputStyle       = lipgloss.NewStyle().Foreground(colorWhite).Border(lipgloss.NormalBorder()).BorderForeground(colorDim).Padding(0, 1)
	focusStyle       = lipgloss.NewStyle().Foreground(colorCyan)
	connectorStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	defaultEditorWidth = 100
	chartBoxWidth      = 24
)

// =============================================================================
// Messages
// =============================================================================

// redrawMsg fires RedrawDelay after a change. It carries the state version
// at scheduling time; only the tick for the latest version redraws.
type redrawMsg struct{ version uint64 }

// uploadDoneMsg carries the outcome of the asynchronous upload.
type uploadDoneMsg struct {
	result *extract.Result
	err    error
}

// savedMsg reports files written by the "w" key.
type savedMsg struct {
	paths []string
	err   error
}

// =============================================================================
// Record Form
// =============================================================================

// Form field indices.
const (
	fieldName = iota
	fieldParent
	fieldEquity
	fieldCount
)

var fieldLabels = [fieldCount]string{"Company Name", "Parent Company", "Equity"}

// recordForm edits one record in the table view. id 0 adds a new record.
type recordForm struct {
	id     int
	fields [fieldCount][]rune
	focus  int
	err    string
}

func (f *recordForm) value(i int) string { return strings.TrimSpace(string(f.fields[i])) }

// =============================================================================
// Editor Model
// =============================================================================

// editorDeps are the collaborators of the editor.
type editorDeps struct {
	client *extract.Client  // nil disables uploads
	runner *pipeline.Runner // nil disables the write key
	opts   pipeline.Options // render options for the write key
	theme  styles.Theme     // colors for the terminal chart
	outDir string           // directory for written files
	csv    string           // CSV export path for the "x" key
}

// editorModel is the bubbletea model of the interactive editor. The store
// is the single source of truth; the model holds only presentation state.
type editorModel struct {
	ctx   context.Context
	state *store.State
	deps  editorDeps

	width int

	drawn   string // last terminal drawing of the chart or tree view
	drawnAt uint64 // state version of drawn

	path   []rune // upload path input
	cursor int    // selected table row
	form   *recordForm

	status    string
	statusErr bool
}

func newEditor(ctx context.Context, st *store.State, deps editorDeps) editorModel {
	if len(deps.theme.Chart) == 0 {
		deps.theme = styles.Gradient()
	}
	if deps.csv == "" {
		deps.csv = pio.DefaultCSVName
	}
	return editorModel{ctx: ctx, state: st, deps: deps, width: defaultEditorWidth, drawnAt: ^uint64(0)}
}

func (m editorModel) Init() tea.Cmd {
	return m.scheduleRedraw()
}

// scheduleRedraw debounces redraws by store.RedrawDelay.
func (m editorModel) scheduleRedraw() tea.Cmd {
	v := m.state.Version()
	return tea.Tick(store.RedrawDelay, func(time.Time) tea.Msg { return redrawMsg{version: v} })
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.drawnAt = ^uint64(0)
		return m, m.scheduleRedraw()

	case redrawMsg:
		if msg.version == m.state.Version() && msg.version != m.drawnAt {
			m.redraw()
		}
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			m.state.FinishUpload(nil, "", fmt.Errorf("%s", errors.UserMessage(msg.err)))
			m.setError("%s", m.state.ErrorMessage())
		} else {
			m.state.FinishUpload(msg.result.Companies, msg.result.ExtractedText, nil)
			if e := m.state.ErrorMessage(); e != "" {
				m.setError("%s", e)
			} else {
				m.setStatus("Loaded %d companies", m.state.Len())
			}
		}
		m.cursor = 0
		return m, m.scheduleRedraw()

	case savedMsg:
		if msg.err != nil {
			m.setError("Write failed: %v", msg.err)
		} else {
			m.setStatus("Wrote %s", strings.Join(msg.paths, ", "))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// =============================================================================
// Key Handling
// =============================================================================

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.form != nil {
		return m.handleFormKey(msg)
	}

	switch key {
	case "tab":
		return m.switchView(1)
	case "shift+tab":
		return m.switchView(-1)
	case "ctrl+s":
		return m.loadSample()
	case "ctrl+r":
		return m.reset()
	}

	if m.state.View() == store.ViewUpload {
		return m.handleUploadKey(msg)
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "1", "2", "3", "4":
		return m.setView(store.Views[key[0]-'1'])
	case "s":
		return m.loadSample()
	case "r":
		return m.reset()
	case "x":
		return m.exportCSV()
	case "w":
		return m, m.writeView()
	}

	if m.state.View() == store.ViewTable {
		return m.handleTableKey(key)
	}
	return m, nil
}

func (m editorModel) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.startUpload()
	case tea.KeyBackspace:
		if len(m.path) > 0 {
			m.path = m.path[:len(m.path)-1]
		}
	case tea.KeySpace:
		m.path = append(m.path, ' ')
	case tea.KeyRunes:
		m.path = append(m.path, msg.Runes...)
	}
	return m, nil
}

func (m editorModel) handleTableKey(key string) (tea.Model, tea.Cmd) {
	records := m.state.Records()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(records)-1 {
			m.cursor++
		}
	case "a":
		m.form = &recordForm{}
	case "e", "enter":
		if m.cursor < len(records) {
			r := records[m.cursor]
			m.form = &recordForm{id: r.ID}
			m.form.fields[fieldName] = []rune(r.Name)
			m.form.fields[fieldParent] = []rune(r.Parent)
			m.form.fields[fieldEquity] = []rune(r.Equity)
		}
	case "d", "delete":
		if m.cursor < len(records) {
			r := records[m.cursor]
			if err := m.state.Remove(r.ID); err != nil {
				m.setError("%v", err)
				return m, nil
			}
			m.setStatus("Deleted %s", r.Name)
			if m.cursor >= m.state.Len() && m.cursor > 0 {
				m.cursor--
			}
			return m, m.scheduleRedraw()
		}
	}
	return m, nil
}

func (m editorModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := *m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % fieldCount
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus + fieldCount - 1) % fieldCount
	case tea.KeyBackspace:
		if n := len(f.fields[f.focus]); n > 0 {
			f.fields[f.focus] = f.fields[f.focus][:n-1]
		}
	case tea.KeySpace:
		f.fields[f.focus] = append(f.fields[f.focus], ' ')
	case tea.KeyRunes:
		f.fields[f.focus] = append(f.fields[f.focus], msg.Runes...)
	case tea.KeyEnter:
		m.form = &f
		return m.submitForm()
	}
	m.form = &f
	return m, nil
}

func (m editorModel) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	name, parent, equity := f.value(fieldName), f.value(fieldParent), f.value(fieldEquity)

	if f.id == 0 {
		r, err := m.state.Add(store.Draft{Name: name, Parent: parent, Equity: equity})
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.cursor = m.state.Len() - 1
		m.setStatus("Added %s", r.Name)
	} else {
		r, err := m.state.Update(f.id, store.Patch{Name: &name, Parent: &parent, Equity: &equity})
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.setStatus("Updated %s", r.Name)
	}
	m.form = nil
	return m, m.scheduleRedraw()
}

// =============================================================================
// Actions
// =============================================================================

func (m editorModel) switchView(step int) (tea.Model, tea.Cmd) {
	n := len(store.Views)
	cur := 0
	for i, v := range store.Views {
		if v == m.state.View() {
			cur = i
		}
	}
	return m.setView(store.Views[(cur+step+n)%n])
}

func (m editorModel) setView(v store.View) (tea.Model, tea.Cmd) {
	if err := m.state.SetView(v); err != nil {
		m.setError("%v", err)
		return m, nil
	}
	return m, m.scheduleRedraw()
}

func (m editorModel) loadSample() (tea.Model, tea.Cmd) {
	if m.state.Busy() {
		m.setError("%v", store.ErrBusy)
		return m, nil
	}
	if err := m.state.Load(company.Sample()); err != nil {
		m.setError("%v", err)
		return m, nil
	}
	m.cursor = 0
	m.setStatus("Sample data loaded")
	return m, m.scheduleRedraw()
}

func (m editorModel) reset() (tea.Model, tea.Cmd) {
	if m.state.Busy() {
		m.setError("%v", store.ErrBusy)
		return m, nil
	}
	m.state.Reset()
	m.path = nil
	m.cursor = 0
	m.setStatus("Cleared")
	return m, m.scheduleRedraw()
}

// startUpload validates the picked path and posts it in the background.
// The upload view stays disabled until uploadDoneMsg arrives.
func (m editorModel) startUpload() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(string(m.path))
	if m.deps.client == nil {
		m.setError("No extraction server configured")
		return m, nil
	}
	if err := errors.ValidateFilename(filepath.Base(path)); path == "" || err != nil {
		m.setError("No file selected")
		return m, nil
	}
	if err := errors.ValidateUploadExtension(path); err != nil {
		m.setError("%s", errors.UserMessage(err))
		return m, nil
	}
	if err := m.state.BeginUpload(filepath.Base(path)); err != nil {
		m.setError("%v", err)
		return m, nil
	}
	m.setStatus("Processing %s...", filepath.Base(path))

	ctx, client := m.ctx, m.deps.client
	return m, func() tea.Msg {
		res, err := uploadFile(ctx, client, path)
		return uploadDoneMsg{result: res, err: err}
	}
}

func (m editorModel) exportCSV() (tea.Model, tea.Cmd) {
	path := m.deps.csv
	if m.deps.outDir != "" && filepath.Dir(path) == "." {
		path = filepath.Join(m.deps.outDir, path)
	}
	if err := writeRecords(m.state.Records(), path); err != nil {
		m.setError("%v", err)
		return m, nil
	}
	m.setStatus("Exported %s", path)
	return m, nil
}

// writeView renders the chart or tree view to files in the background.
func (m editorModel) writeView() tea.Cmd {
	view := m.state.View()
	if m.deps.runner == nil || (view != store.ViewChart && view != store.ViewTree) {
		return nil
	}
	records := m.state.Records()
	opts := m.deps.opts
	opts.Mode = string(view)
	base := filepath.Join(m.deps.outDir, "orgchart-"+string(view))
	ctx, runner := m.ctx, m.deps.runner

	return func() tea.Msg {
		res, err := runner.Execute(ctx, records, opts)
		if err != nil {
			return savedMsg{err: err}
		}
		paths, err := writeArtifacts(res.Artifacts, opts.Formats, base)
		return savedMsg{paths: paths, err: err}
	}
}

func (m *editorModel) setStatus(format string, args ...any) {
	m.status, m.statusErr = fmt.Sprintf(format, args...), false
}

func (m *editorModel) setError(format string, args ...any) {
	m.status, m.statusErr = fmt.Sprintf(format, args...), true
}

// =============================================================================
// Drawing
// =============================================================================

// redraw rebuilds the hierarchy and layout of the current records and draws
// the active chart or tree view as text.
func (m *editorModel) redraw() {
	m.drawnAt = m.state.Version()

	view := m.state.View()
	if view != store.ViewChart && view != store.ViewTree {
		return
	}
	if m.state.Len() == 0 {
		m.drawn = StyleDim.Render("No companies. Upload a document or press s for sample data.")
		return
	}

	f, err := m.state.Forest()
	if err != nil {
		m.drawn = StyleError.Render(err.Error())
		return
	}
	l, err := layout.Build(layout.Mode(view), f, layout.WithWidth(m.deps.opts.Width))
	if err != nil {
		m.drawn = StyleError.Render(err.Error())
		return
	}

	if view == store.ViewTree {
		m.drawn = drawTree(l, m.deps.theme)
	} else {
		m.drawn = drawChart(l, m.deps.theme, m.width)
	}
	for _, o := range f.Orphans {
		m.drawn += "\n" + StyleWarning.Render(fmt.Sprintf("! %s: parent %q not found", o.Name, o.Parent))
	}
}

// drawChart draws one row of boxes per level, centered in width.
func drawChart(l layout.Layout, t styles.Theme, width int) string {
	rows := l.Rows()
	var lines []string
	for depth := 0; depth < len(rows); depth++ {
		lvl := t.ChartLevel(depth)
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(styles.CSS(lvl.From))).
			Foreground(lipgloss.Color(styles.CSS(lvl.To))).
			Width(chartBoxWidth).
			Align(lipgloss.Center)

		boxes := make([]string, 0, len(rows[depth]))
		for _, name := range rows[depth] {
			n, _ := l.Position(name)
			boxes = append(boxes, box.Render(styles.ChartLabel(n.Name)+"\n"+StyleDim.Render(n.Equity)))
		}
		if depth > 0 {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, connectorStyle.Render("│")))
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, boxes...)))
	}
	return strings.Join(lines, "\n")
}

// drawTree draws one indented line per company in pre-order.
func drawTree(l layout.Layout, t styles.Theme) string {
	var b strings.Builder
	for i, n := range l.Nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		indent := strings.Repeat("   ", n.Depth)
		if n.Depth > 0 {
			indent = strings.Repeat("   ", n.Depth-1) + connectorStyle.Render(" └─")
		}
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(styles.CSS(t.TreeColor(n.Depth)))).Render(styles.TreeLabel(n.Name))
		badge := lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color(styles.CSS(t.TreeColor(n.Depth)))).Padding(0, 1).Render(n.Equity)
		b.WriteString(indent + " " + name + " " + badge)
	}
	return b.String()
}

func (m editorModel) View() string {
	snap := m.state.Snapshot()

	var b strings.Builder
	b.WriteString(m.viewTabs(snap.View))
	b.WriteString("\n\n")

	switch snap.View {
	case store.ViewUpload:
		b.WriteString(m.viewUpload(snap))
	case store.ViewChart, store.ViewTree:
		b.WriteString(m.drawn)
		if len(snap.Records) > 0 {
			b.WriteString("\n\n" + StyleDim.Render(statsLine(m.state.Stats())))
		}
	case store.ViewTable:
		b.WriteString(m.viewTable(snap))
	}

	b.WriteString("\n\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(StyleError.Render(m.status))
		} else {
			b.WriteString(StyleSuccess.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(m.help(snap.View)))
	return b.String()
}

func (m editorModel) viewTabs(active store.View) string {
	tabs := make([]string, len(store.Views))
	for i, v := range store.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == active {
			tabs[i] = tabActiveStyle.Render(label)
		} else {
			tabs[i] = tabInactiveStyle.Render(label)
		}
	}
	return StyleTitle.Render(appName) + "  " + strings.Join(tabs, "  ")
}

func (m editorModel) viewUpload(snap store.Snapshot) string {
	var b strings.Builder
	b.WriteString("Document (" + strings.Join(errors.UploadExtensions, " ") + ")\n")
	if snap.Busy {
		b.WriteString(inputStyle.Render(StyleDim.Render("Processing " + snap.FileName + "...")))
	} else {
		b.WriteString(inputStyle.Render(string(m.path) + focusStyle.Render("█")))
	}
	if snap.Error != "" {
		b.WriteString("\n" + StyleError.Render(snap.Error))
	}
	if m.deps.client != nil {
		b.WriteString("\n" + StyleDim.Render("Server: ") + StyleLink.Render(m.deps.client.Endpoint()))
	}
	if snap.Extracted != "" {
		b.WriteString("\n\n" + StyleTitle.Render("Extracted text") + "\n" + StyleDim.Render(snap.Extracted))
	}
	return b.String()
}

func (m editorModel) viewTable(snap store.Snapshot) string {
	if len(snap.Records) == 0 && m.form == nil {
		return StyleDim.Render("No companies")
	}
	var b strings.Builder
	if len(snap.Records) > 0 {
		b.WriteString(recordTable(snap.Records, m.cursor))
		b.WriteString("\n" + StyleDim.Render(statsLine(m.state.Stats())))
	}
	if m.form != nil {
		b.WriteString("\n\n" + m.viewForm())
	}
	return b.String()
}

func (m editorModel) viewForm() string {
	f := m.form
	title := "Add company"
	if f.id != 0 {
		title = fmt.Sprintf("Edit company #%d", f.id)
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	for i := 0; i < fieldCount; i++ {
		label := lipgloss.NewStyle().Width(16).Foreground(colorGray).Render(fieldLabels[i])
		value := string(f.fields[i])
		if i == f.focus {
			label = lipgloss.NewStyle().Width(16).Inherit(focusStyle).Render(fieldLabels[i])
			value += focusStyle.Render("█")
		}
		b.WriteString("\n" + label + " " + StyleValue.Render(value))
	}
	if f.err != "" {
		b.WriteString("\n" + StyleError.Render(f.err))
	}
	return b.String()
}

func (m editorModel) help(v store.View) string {
	if m.form != nil {
		return "tab next field  enter save  esc cancel"
	}
	switch v {
	case store.ViewUpload:
		return "enter upload  ctrl+s sample data  ctrl+r clear  tab views  esc quit"
	case store.ViewTable:
		return "↑/↓ select  a add  e edit  d delete  x export csv  s sample  r clear  tab views  q quit"
	}
	return "w write files  x export csv  s sample  r clear  1-4/tab views  q quit"
}
