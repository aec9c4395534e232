package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/baysideops/rotabot/internal/core"
	"github.com/baysideops/rotabot/internal/observability"
	"github.com/baysideops/rotabot/pkg/models"
)

// Dashboard panel indices.
const (
	panelSelections = iota
	panelStreaks
	panelRoster
	panelEvents
	panelCount
)

// maxDashboardEvents caps the events panel at the most recent entries.
const maxDashboardEvents = 10

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	selections []models.DatedSelection
	streaks    []streakRow
	roster     []rosterRow
	events     []observability.Event
	weekday    string

	// State.
	loading bool
	err     error
}

type streakRow struct {
	person  string
	blocked bool
	onPrev  bool
}

type rosterRow struct {
	person   string
	excluded bool
}

// rotationLoadedMsg carries loaded data back to the model.
type rotationLoadedMsg struct {
	selections []models.DatedSelection
	streaks    []streakRow
	roster     []rosterRow
	events     []observability.Event
	weekday    string
	err        error
}

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	blockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	onPrevStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	availStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelSelections,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadRotationData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadRotationData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rotationLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.selections = msg.selections
		m.streaks = msg.streaks
		m.roster = msg.roster
		m.events = msg.events
		m.weekday = msg.weekday
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" Rotation Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	selectionsPanel := m.renderSelectionsPanel()
	streaksPanel := m.renderStreaksPanel()
	rosterPanel := m.renderRosterPanel()
	eventsPanel := m.renderEventsPanel()

	availableWidth := m.width - 2

	var body string
	if availableWidth > 120 {
		colWidth := availableWidth / 3
		selectionsPanel = m.applyPanelStyle(panelSelections, selectionsPanel, colWidth-4)
		streaksPanel = m.applyPanelStyle(panelStreaks, streaksPanel, colWidth-4)
		rosterPanel = m.applyPanelStyle(panelRoster, rosterPanel, colWidth-4)
		eventsPanel = m.applyPanelStyle(panelEvents, eventsPanel, availableWidth-4)
		top := lipgloss.JoinHorizontal(lipgloss.Top, selectionsPanel, streaksPanel, rosterPanel)
		body = lipgloss.JoinVertical(lipgloss.Left, top, eventsPanel)
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		selectionsPanel = m.applyPanelStyle(panelSelections, selectionsPanel, panelWidth)
		streaksPanel = m.applyPanelStyle(panelStreaks, streaksPanel, panelWidth)
		rosterPanel = m.applyPanelStyle(panelRoster, rosterPanel, panelWidth)
		eventsPanel = m.applyPanelStyle(panelEvents, eventsPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, selectionsPanel, streaksPanel, rosterPanel, eventsPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderSelectionsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Service Desk"))
	b.WriteString("\n")

	if len(m.selections) == 0 {
		b.WriteString("  No selections recorded.")
		return b.String()
	}

	for _, entry := range m.selections {
		names := make([]string, len(entry.Pair))
		for i, person := range entry.Pair {
			names[i] = string(person)
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", entry.Date, strings.Join(names, ", ")))
	}

	return b.String()
}

func (m dashboardModel) renderStreaksPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Streaks"))
	b.WriteString("\n")

	for _, row := range m.streaks {
		switch {
		case row.blocked:
			b.WriteString(fmt.Sprintf("  %s %s\n", blockedStyle.Render("[blocked]"), row.person))
		case row.onPrev:
			b.WriteString(fmt.Sprintf("  %s %s\n", onPrevStyle.Render("[1 day]  "), row.person))
		default:
			b.WriteString(fmt.Sprintf("  %s %s\n", availStyle.Render("[clear]  "), row.person))
		}
	}

	return b.String()
}

func (m dashboardModel) renderRosterPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Roster (%s)", m.weekday)))
	b.WriteString("\n")

	for _, row := range m.roster {
		if row.excluded {
			b.WriteString(excludedStyle.Render(fmt.Sprintf("  %s (excluded)", row.person)))
			b.WriteString("\n")
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", row.person))
		}
	}

	return b.String()
}

func (m dashboardModel) renderEventsPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Recent Events"))
	b.WriteString("\n")

	if len(m.events) == 0 {
		b.WriteString("  No events recorded.")
		return b.String()
	}

	for _, event := range m.events {
		stamp := event.Time.Local().Format("01-02 15:04")
		line := fmt.Sprintf("  %s  %-15s %s\n", stamp, event.Type, event.Message)
		switch event.Level {
		case "ERROR":
			b.WriteString(blockedStyle.Render(line))
		case "WARN":
			b.WriteString(onPrevStyle.Render(line))
		default:
			b.WriteString(line)
		}
	}

	return b.String()
}

// recentEvents reads the event log and returns the newest entries first.
// A missing or unreadable log yields an empty panel rather than an error.
func recentEvents(limit int) []observability.Event {
	if EventLog == nil {
		return nil
	}
	events, err := EventLog.Read(observability.EventFilter{})
	if err != nil {
		return nil
	}
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}

func loadRotationData() tea.Msg {
	result := rotationLoadedMsg{}

	if History == nil {
		result.err = fmt.Errorf("history store not initialized")
		return result
	}
	if err := History.Load(); err != nil {
		result.err = fmt.Errorf("loading history: %w", err)
		return result
	}

	result.selections = History.RecentEntries(10)
	result.events = recentEvents(maxDashboardEvents)

	now := time.Now()
	result.weekday = core.DayName(now, Config)

	prev := core.PreviousWeekday(now)
	prevPrev := core.PreviousWeekday(prev)
	hist := core.HistoryView{
		Previous:       History.PairOn(prev.Format(models.HistoryDateLayout)),
		BeforePrevious: History.PairOn(prevPrev.Format(models.HistoryDateLayout)),
	}
	blocked := hist.StreakBlocked()

	onPrev := make(map[string]bool, len(hist.Previous))
	for _, person := range hist.Previous {
		onPrev[strings.ToLower(string(person))] = true
	}

	policy := Config.PolicyFor(result.weekday)
	for _, person := range Config.Roster {
		key := strings.ToLower(string(person))
		result.streaks = append(result.streaks, streakRow{
			person:  string(person),
			blocked: blocked[key],
			onPrev:  onPrev[key],
		})
		result.roster = append(result.roster, rosterRow{
			person:   string(person),
			excluded: policy.Excluded[key],
		})
	}

	return result
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI view of the rotation state",
	Long: `Launch an interactive terminal dashboard showing recent Service Desk
selections, per-person streak state, today's roster eligibility, and the
latest run events.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if History == nil {
			return fmt.Errorf("history store not initialized")
		}
		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
