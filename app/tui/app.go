package main

import (
	"log"
	"regexp"
	"strings"

	"github.com/acarl005/stripansi"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/knipferrc/teacup/code"
	"github.com/realitybuilders/rbew_search/opener"
	"github.com/realitybuilders/rbew_search/router"
	"github.com/realitybuilders/rbew_search/search"
	"github.com/realitybuilders/rbew_search/searchbar"
	"github.com/realitybuilders/rbew_search/utils"
)

var (
	HomeStyle   = lipgloss.NewStyle().MarginTop(1).MarginLeft(2).Foreground(lipgloss.Color("245"))
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).PaddingLeft(1)
)

// Main app model for bubbletea
type Model struct {
	width     int             // width of terminal
	height    int             // height of terminal
	preview   *code.Bubble    // the page viewer
	bar       searchbar.Model // the search widget
	router    *router.Router  // resolves in-site paths to pages
	history   *router.History // visited pages, for ctrl+b
	status    string          // last navigation outcome
	statusErr bool
}

// Create a new model for the app
func New(catalog []search.Record, config *utils.Config) Model {
	r := router.New(config.ContentRoot)
	browser := opener.Browser{Command: config.Browser, Foreground: config.BrowserForeground}

	routes := searchbar.Routes{
		Push: func(path string) tea.Cmd {
			log.Printf("navigate %s", path)
			return r.Navigate(path)
		},
		OpenExternal: func(url string) tea.Cmd {
			log.Printf("open external %s", url)
			return browser.Open(url)
		},
	}

	return Model{
		bar:     searchbar.New(catalog, routes),
		router:  r,
		history: &router.History{},
	}
}

func (m *Model) setPreviewSize() {
	if m.preview != nil {
		// the status line takes the last row
		m.preview.SetSize(m.width, m.height-lipgloss.Height(m.bar.View())-1)
	}
}

func (m *Model) updateSize(width, height int) {
	m.height = height
	m.width = width

	m.bar.SetWidth(width)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = formatStatus(text)
	m.statusErr = isErr
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.router.Navigate("/"))
}

// Formats a status message on a single line
// strips colours and collapses whitespace.
func formatStatus(text string) string {
	s := stripansi.Strip(text)
	s = strings.ReplaceAll(s, "\n", " ")
	re := regexp.MustCompile(`\s{2,}|\t+`)
	return strings.TrimSpace(re.ReplaceAllString(s, " "))
}

// The update fn for the bubbletea model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// while the panel is open every key belongs to the search bar
	barOpen := m.bar.IsOpen()

	switch msg := msg.(type) {
	case router.NavigatedMsg:
		if msg.Err != nil {
			log.Printf("navigate %s: %v", msg.Path, msg.Err)
			m.setStatus(msg.Err.Error(), true)
			break
		}
		m.history.Visit(msg.Path)
		codeModel := code.New(false, true, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})
		cmds = append(cmds, codeModel.SetFileName(msg.File))
		m.preview = &codeModel
		m.setStatus(msg.Path, false)
	case opener.OpenedMsg:
		if msg.Err != nil {
			log.Printf("open %s: %v", msg.URL, msg.Err)
			m.setStatus("could not open "+msg.URL+": "+msg.Err.Error(), true)
			break
		}
		m.setStatus("opened "+msg.URL, false)
	case tea.KeyMsg:
		// Keybindings:
		// / or Ctrl+F - open the search bar
		// Esc - close the page
		// Ctrl+B - back to the previous page
		// Ctrl+K - Page line up
		// Ctrl+J - Page line down
		// Ctrl+C - quit the application
		if msg.String() == "ctrl+c" {
			return m, tea.Batch(m.bar.Unmount(), tea.Quit)
		}
		if barOpen {
			break
		}
		switch msg.String() {
		case "esc":
			m.preview = nil
			m.history.Clear()
		case "ctrl+b":
			if prev, ok := m.history.Back(); ok {
				cmds = append(cmds, m.router.Navigate(prev))
			}
		case "ctrl+k":
			if m.preview != nil {
				m.preview.Viewport.LineUp(5)
			}
		case "ctrl+j":
			if m.preview != nil {
				m.preview.Viewport.LineDown(5)
			}
		}
	case tea.WindowSizeMsg:
		m.updateSize(msg.Width, msg.Height)
	}

	// pass on message to the other components
	m.bar, cmd = m.bar.Update(msg)
	cmds = append(cmds, cmd)

	_, isKey := msg.(tea.KeyMsg)
	if m.preview != nil && !(isKey && barOpen) {
		var newPreview code.Bubble
		newPreview, cmd = m.preview.Update(msg)
		cmds = append(cmds, cmd)
		m.preview = &newPreview
	}

	m.setPreviewSize()

	return m, tea.Batch(cmds...)
}

// View fn for bubbletea model
func (m Model) View() string {
	content := HomeStyle.Render("Press / to search projects, pages, music and artists.")
	if m.preview != nil {
		content = m.preview.View()
	}

	status := StatusStyle.Render(m.status)
	if m.statusErr {
		status = ErrorStyle.Render(m.status)
	}

	// the search bar stays at the top so its bounds start at the origin
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.bar.View(), // render the search widget
		content,      // render the current page
		status,       // render the status line
	)
}
