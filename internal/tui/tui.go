// Package tui provides a Bubble Tea terminal browser for DVK archives.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drakovek/dvk-archive/internal/archive"
	"github.com/drakovek/dvk-archive/internal/config"
	"github.com/drakovek/dvk-archive/internal/dvk"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateBrowse
	StateError
)

// Model is the Bubble Tea model for the archive browser.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings

	handler      *archive.Handler
	sortMode     archive.SortMode
	groupArtists bool
	cursor       int

	err error

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new browser model. The initial path prompt defaults
// to the current working directory.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/archive"
	if cwd, err := os.Getwd(); err == nil {
		ti.SetValue(cwd)
	}
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:        StateInput,
		textInput:    ti,
		spinner:      sp,
		settings:     settings,
		sortMode:     archive.ParseSortMode(settings.SortMode),
		groupArtists: settings.GroupArtists,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// LoadDoneMsg is sent when archive loading completes.
type LoadDoneMsg struct {
	Err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateLoading:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			case StateBrowse, StateError:
				m.reset()
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				m.handler = archive.NewHandler(m.settings.MaxConcurrentLoads, nil)
				return m, tea.Batch(m.loadArchive(m.textInput.Value()), m.spinner.Tick)
			}

		case "q":
			if m.state == StateBrowse || m.state == StateError {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == StateBrowse && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == StateBrowse && m.cursor < m.handler.Size()-1 {
				m.cursor++
			}

		case "home":
			if m.state == StateBrowse {
				m.cursor = 0
			}

		case "end":
			if m.state == StateBrowse && m.handler.Size() > 0 {
				m.cursor = m.handler.Size() - 1
			}

		case "a", "t", "r", "v":
			if m.state == StateBrowse {
				m.sortMode = archive.ParseSortMode(msg.String())
				m.resort()
			}

		case "g":
			if m.state == StateBrowse {
				m.groupArtists = !m.groupArtists
				m.resort()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.handler.Sort(m.sortMode, m.groupArtists)
			m.cursor = 0
			m.state = StateBrowse
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// reset returns the browser to the path prompt for a new archive.
func (m *Model) reset() {
	m.state = StateInput
	m.handler = nil
	m.err = nil
	m.cursor = 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.Focus()
}

// resort re-applies the current sort and keeps the cursor on a valid row.
func (m *Model) resort() {
	m.handler.Sort(m.sortMode, m.groupArtists)
	if m.cursor >= m.handler.Size() {
		m.cursor = 0
	}
}

// loadArchive loads records from the given root in the background.
func (m *Model) loadArchive(root string) tea.Cmd {
	handler := m.handler
	ctx := m.ctx
	return func() tea.Msg {
		return LoadDoneMsg{Err: handler.Load(ctx, []string{root})}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DVK Archive Browser"))
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Archive directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	return m.spinner.View() + " " + subtitleStyle.Render("Loading DVK files...") + "\n"
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	grouped := ""
	if m.groupArtists {
		grouped = " • grouped by artist"
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"%d records • sort: %s%s", m.handler.Size(), m.sortMode, grouped)))
	b.WriteString("\n\n")

	if m.handler.Size() == 0 {
		b.WriteString(dimStyle.Render("No DVK files found."))
		b.WriteString("\n")
		return b.String()
	}

	first, last := m.visibleRange()
	for i := first; i < last; i++ {
		d := m.handler.SortedDvk(i)
		line := fmt.Sprintf("%s  %s", d.Title, dimStyle.Render(d.ArtistString()))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(recordStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewDetail(m.handler.SortedDvk(m.cursor)))

	return b.String()
}

// visibleRange computes the window of records to show around the cursor.
func (m Model) visibleRange() (int, int) {
	rows := m.height - 14 // header, status, detail box, footer
	if rows < 5 {
		rows = 5
	}
	size := m.handler.Size()
	if size <= rows {
		return 0, size
	}

	first := m.cursor - rows/2
	if first < 0 {
		first = 0
	}
	if first+rows > size {
		first = size - rows
	}
	return first, first + rows
}

func (m Model) viewDetail(d *dvk.Dvk) string {
	if d.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID: %s\n", d.ID))
	b.WriteString(fmt.Sprintf("Time: %s    Rating: %d    Views: %d\n", d.Time, d.Rating, d.Views))
	if len(d.WebTags) > 0 {
		b.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(d.WebTags, ", ")))
	}
	b.WriteString(dimStyle.Render(d.Path))

	return boxStyle.Render(b.String())
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + m.err.Error())
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load archive • esc: quit"
	case StateLoading:
		return "esc: cancel"
	case StateBrowse:
		return "↑/↓: move • a/t/r/v: sort mode • g: group artists • esc: new path • q: quit"
	case StateError:
		return "esc: new path • q: quit"
	}
	return ""
}

// Run starts the browser.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
