package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/realitybuilders/rbew_search/search"
)

const (
	defaultWidth = 60

	hintText      = "Type to search across RBEW & Reality Radio Network"
	noResultsText = "No results found"
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
	DividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	IconStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	ThumbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("176"))
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ExternalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Routes turns navigation requests into bubbletea commands.
type Routes struct {
	Push         func(path string) tea.Cmd
	OpenExternal func(url string) tea.Cmd
}

// cmdNavigator queues the commands produced by a selection until the end
// of the current Update.
type cmdNavigator struct {
	routes  Routes
	pending []tea.Cmd
}

func (n *cmdNavigator) Push(path string) {
	if n.routes.Push != nil {
		n.pending = append(n.pending, n.routes.Push(path))
	}
}

func (n *cmdNavigator) OpenExternal(url string) {
	if n.routes.OpenExternal != nil {
		n.pending = append(n.pending, n.routes.OpenExternal(url))
	}
}

func (n *cmdNavigator) flush() []tea.Cmd {
	cmds := n.pending
	n.pending = nil
	return cmds
}

// Model is the bubbletea component for the search widget.
type Model struct {
	ctrl   *Controller
	nav    *cmdNavigator
	mouse  *MouseWatcher
	input  textinput.Model
	cursor int // highlighted result
	width  int
}

// New creates a closed search widget over catalog.
func New(catalog []search.Record, routes Routes) Model {
	nav := &cmdNavigator{routes: routes}
	mouse := &MouseWatcher{}
	m := Model{
		ctrl:  NewController(catalog, nav, mouse),
		nav:   nav,
		mouse: mouse,
		input: createTextInput(),
	}
	m.SetWidth(defaultWidth)
	return m
}

func createTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search projects, music, artists..."
	ti.Prompt = "⌕ "
	ti.PromptStyle = IconStyle
	return ti
}

// Controller exposes the underlying state machine.
func (m Model) Controller() *Controller {
	return m.ctrl
}

// IsOpen reports whether the result panel is showing.
func (m Model) IsOpen() bool {
	return m.ctrl.IsOpen()
}

// Cursor is the index of the highlighted result.
func (m Model) Cursor() int {
	return m.cursor
}

// SetWidth limits the panel to the given terminal width.
func (m *Model) SetWidth(width int) {
	if width <= 0 || width > defaultWidth {
		width = defaultWidth
	}
	m.width = width
	// prompt and trailing cursor share the line with the visible value
	m.input.Width = max(1, m.innerWidth()-lipgloss.Width(m.input.Prompt)-1)
	m.layout()
}

func (m Model) innerWidth() int {
	return max(1, m.width-PanelStyle.GetHorizontalFrameSize())
}

// inputLine renders the text input wrapped to the panel so its height is
// known before the panel is drawn.
func (m Model) inputLine() string {
	return lipgloss.NewStyle().Width(m.innerWidth()).Render(m.input.View())
}

// headerHeight is the number of panel rows above the first result: top
// border, input, divider.
func (m Model) headerHeight() int {
	return PanelStyle.GetBorderTopWidth() + PanelStyle.GetPaddingTop() + lipgloss.Height(m.inputLine()) + 1
}

// Unmount tears the widget down and returns the command that turns mouse
// reporting back off, if it was on.
func (m Model) Unmount() tea.Cmd {
	m.ctrl.Unmount()
	return m.mouse.Flush()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys while the widget has focus and mouse presses while
// the panel is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.sync()
	m.layout()

	cmds = append(cmds, m.nav.flush()...)
	cmds = append(cmds, m.mouse.Flush())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.ctrl.IsOpen() {
		switch msg.String() {
		case "/", "ctrl+f":
			m.ctrl.Toggle()
			return textinput.Blink
		}
		return nil
	}

	results := m.ctrl.Results()
	switch msg.String() {
	case "ctrl+f", "esc":
		m.ctrl.Toggle()
		return nil
	case "tab", "down":
		if m.cursor < len(results)-1 {
			m.cursor++
		}
		return nil
	case "shift+tab", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "enter":
		if m.cursor < len(results) {
			m.ctrl.Select(results[m.cursor])
		}
		return nil
	}

	oldValue := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if newValue := m.input.Value(); newValue != oldValue {
		m.ctrl.SetQuery(newValue)
		m.cursor = 0
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Type != tea.MouseLeft {
		return
	}
	p := Point{X: msg.X, Y: msg.Y}
	if m.ctrl.IsOpen() && m.ctrl.Bounds().Contains(p) {
		if i, ok := m.rowAt(p); ok {
			m.ctrl.Select(m.ctrl.Results()[i])
		}
		return
	}
	m.mouse.Dispatch(msg)
}

// rowAt maps a point inside the panel to a result index.
func (m Model) rowAt(p Point) (int, bool) {
	i := p.Y - m.ctrl.Bounds().Y - m.headerHeight()
	if i < 0 || i >= len(m.ctrl.Results()) {
		return 0, false
	}
	return i, true
}

// sync brings the text input in line with the controller, which may have
// closed on its own after a selection or an outside click.
func (m *Model) sync() {
	if m.ctrl.IsOpen() {
		if !m.input.Focused() {
			m.input.Reset()
			m.input.Focus()
			m.cursor = 0
		}
		return
	}
	if m.input.Focused() || m.input.Value() != "" {
		m.input.Reset()
		m.input.Blur()
	}
	m.cursor = 0
}

func (m *Model) layout() {
	view := m.View()
	m.ctrl.SetBounds(Rect{Width: lipgloss.Width(view), Height: lipgloss.Height(view)})
}

// View renders the closed button or the open panel.
func (m Model) View() string {
	if !m.ctrl.IsOpen() {
		return ButtonStyle.Render("⌕ Search (/)")
	}

	inner := m.innerWidth()
	lines := []string{
		m.inputLine(),
		DividerStyle.Render(strings.Repeat("─", inner)),
	}

	results := m.ctrl.Results()
	switch {
	case strings.TrimSpace(m.ctrl.Query()) == "":
		lines = append(lines, HintStyle.Render(hintText))
	case len(results) == 0:
		lines = append(lines, HintStyle.Render(noResultsText))
	default:
		for i, r := range results {
			lines = append(lines, RenderRow(r, i == m.cursor, inner))
		}
	}

	return PanelStyle.Width(m.width - PanelStyle.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderRow draws one result on a single line no wider than width.
func RenderRow(r search.Record, selected bool, width int) string {
	marker := ThumbStyle.Render("▣")
	if v := r.Visual(); !v.HasImage() {
		marker = IconStyle.Render(v.Icon.Glyph)
	}

	title := TitleStyle.Render(r.Title)
	if selected {
		title = SelectedStyle.Render(r.Title)
	}

	line := marker + " " + title
	if r.IsExternal {
		line += " " + ExternalStyle.Render("↗")
	}
	line += "  " + SubtitleStyle.Render(r.Subtitle)

	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
