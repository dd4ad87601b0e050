package tui

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Layout and timing constants
const (
	// ChromeHeight is the footer line below the content
	ChromeHeight = 1

	tickInterval   = 100 * time.Millisecond
	infoStatusTTL  = 3 * time.Second
	errorStatusTTL = 5 * time.Second
)

// Model is the main Bubble Tea model
type Model struct {
	orchestrator  *search.Orchestrator
	states        <-chan search.State
	notifications <-chan domain.Notification

	// Application state
	State  ApplicationState
	Ready  bool
	Width  int
	Height int

	// Last applied orchestrator snapshot
	Search search.State

	// Components
	SearchBar components.SearchBar
	Grid      components.Grid
	Detail    components.DetailModal
	History   *History

	// Status
	StatusMsg    string
	StatusIsErr  bool
	statusID     int
	SpinnerFrame int
}

// NewModel creates a new application model. The observer and notifier must be
// the ones the orchestrator was built with.
func NewModel(
	orchestrator *search.Orchestrator,
	observer *ChannelObserver,
	notifier *ChannelNotifier,
	imageBaseURL string,
) Model {
	grid := components.NewGrid()
	grid.SetFocused(true)

	return Model{
		orchestrator:  orchestrator,
		states:        observer.States(),
		notifications: notifier.Notifications(),
		State:         StateBrowsing,
		Search:        orchestrator.Snapshot(),
		SearchBar:     components.NewSearchBar(),
		Grid:          grid,
		Detail:        components.NewDetailModal(imageBaseURL),
		History:       NewHistory(defaultHistorySize),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		MountCmd(m.orchestrator),
		WaitForStateCmd(m.states),
		WaitForNotificationCmd(m.notifications),
		TickCmd(tickInterval),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.layout()
		return m, nil

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(tickInterval)

	case StateChangedMsg:
		m.applyState(msg.State)
		return m, WaitForStateCmd(m.states)

	case NotificationMsg:
		cmd := m.setStatus(msg.Notification)
		return m, tea.Batch(cmd, WaitForNotificationCmd(m.notifications))

	case SearchDoneMsg:
		// Catch up in case the final snapshot was coalesced away
		m.applyState(m.orchestrator.Snapshot())
		return m, nil

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Forward everything else (cursor blink) to the focused input
	if m.SearchBar.Focused() {
		var cmd tea.Cmd
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key leaves the help screen
	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	if m.Detail.IsVisible() {
		if key.Matches(msg, Keys.Escape) || key.Matches(msg, Keys.Quit) {
			m.orchestrator.CloseModal()
			m.applyState(m.orchestrator.Snapshot())
			return m, nil
		}
		var cmd tea.Cmd
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	if m.SearchBar.Focused() {
		return m.handleSearchInput(msg)
	}

	if m.Grid.IsFilterTyping() {
		var cmd tea.Cmd
		m.Grid, cmd = m.Grid.Update(msg)
		m.layout()
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Grid.SetFocused(false)
		m.SearchBar.SetSuggestions(m.History.Entries())
		m.SearchBar.SetRecent(m.History.Match(m.SearchBar.Value()))
		cmd := m.SearchBar.Focus()
		m.layout()
		return m, cmd

	case key.Matches(msg, Keys.Reload):
		if m.Search.Query == "" {
			return m, nil
		}
		return m.submit(m.Search.Query)

	case key.Matches(msg, Keys.Open):
		if m.Search.Mode() != search.ModeResults {
			return m, nil
		}
		if movie := m.Grid.SelectedMovie(); movie != nil {
			m.orchestrator.Select(*movie)
			m.applyState(m.orchestrator.Snapshot())
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		if m.Search.Mode() != search.ModeResults || len(m.Grid.Movies()) == 0 {
			return m, nil
		}
		if !m.Grid.IsFiltering() {
			m.Grid.ToggleFilter()
			m.layout()
			return m, nil
		}
	}

	if m.Search.Mode() != search.ModeResults {
		return m, nil
	}
	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	m.layout()
	return m, cmd
}

// handleSearchInput routes keys to the focused search bar
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd       tea.Cmd
		submitted bool
	)
	m.SearchBar, cmd, submitted = m.SearchBar.Update(msg)
	if submitted {
		return m.submit(m.SearchBar.Value())
	}

	if !m.SearchBar.Focused() {
		m.Grid.SetFocused(true)
		m.layout()
		return m, cmd
	}
	if m.SearchBar.QueryChanged() {
		m.SearchBar.SetRecent(m.History.Match(m.SearchBar.Value()))
		m.layout()
	}
	return m, cmd
}

// submit records the query and starts the search off the update loop
func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" {
		return m, nil
	}
	m.History.Add(query)
	m.SearchBar.Blur()
	m.SearchBar.SetValue(query)
	m.Grid.SetFocused(true)
	m.layout()
	return m, SubmitCmd(m.orchestrator, query)
}

// applyState adopts a snapshot unless a newer one was already applied
func (m *Model) applyState(state search.State) {
	if state.Version != 0 && state.Version <= m.Search.Version {
		return
	}
	if !sameMovies(m.Search.Movies, state.Movies) {
		m.Grid.SetMovies(state.Movies)
		m.layout()
	}
	m.Search = state
	m.Detail.SetMovie(state.Selected)
}

// setStatus shows a notification in the footer and schedules its removal
func (m *Model) setStatus(n domain.Notification) tea.Cmd {
	m.statusID++
	m.StatusMsg = n.Message
	m.StatusIsErr = n.Level == domain.LevelError

	ttl := infoStatusTTL
	if m.StatusIsErr {
		ttl = errorStatusTTL
	}
	return ClearStatusCmd(m.statusID, ttl)
}

// layout distributes the window between search bar, content and footer
func (m *Model) layout() {
	if !m.Ready {
		return
	}
	m.SearchBar.SetWidth(m.Width)
	m.Grid.SetSize(m.Width, m.contentHeight())
	m.Detail.SetSize(m.Width, m.Height)
}

func (m Model) contentHeight() int {
	return max(1, m.Height-m.SearchBar.Height()-ChromeHeight)
}

func sameMovies(a, b []domain.Movie) bool {
	return slices.EqualFunc(a, b, func(x, y domain.Movie) bool {
		return x.ID == y.ID
	})
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	if m.Detail.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Detail.View())
	}

	height := m.contentHeight()
	var content string
	switch m.Search.Mode() {
	case search.ModeLoading:
		content = renderLoader(m.Search.Query, m.SpinnerFrame, m.Width, height)
	case search.ModeError:
		content = renderErrorBanner(m.Width, height)
	default:
		content = m.Grid.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.SearchBar.View(),
		content,
		m.renderFooter(),
	)
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.SubtitleStyle.Render(m.StatusMsg)
	case m.Search.IsLoading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	case m.Search.Query != "":
		count := len(m.Grid.Movies())
		left = styles.DimStyle.Render(pluralize(count, "movie") + " for " + quote(m.Search.Query))
	}

	var right string
	switch {
	case m.SearchBar.Focused():
		right = renderHints("enter", "search", "tab", "complete", "esc", "cancel")
	case m.Grid.IsFiltering():
		right = renderHints("esc", "clear filter", "?", "help")
	default:
		right = renderHints("/", "search", "f", "filter", "enter", "details", "?", "help")
	}

	gap := max(0, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(helpText()))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func quote(s string) string {
	return "\"" + s + "\""
}
