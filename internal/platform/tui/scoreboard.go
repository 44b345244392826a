package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jly-arcade/internal/registry"
	"github.com/vovakirdan/jly-arcade/internal/storage"
)

const (
	boardRounds    = 100 // rounds listed per game
	statsPanelW    = 24
	sideBySideMinW = 84 // narrower terminals get the stats panel under the rounds
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// roundOrder is how the round list is sorted.
type roundOrder int

const (
	orderBest roundOrder = iota
	orderRecent
)

func (o roundOrder) String() string {
	if o == orderRecent {
		return "latest first"
	}
	return "best first"
}

// boardKeys are the scoreboard bindings.
type boardKeys struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Order  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Order, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab/←→", "game")),
		Order:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists the stored rounds of one game at a time, next to
// the all-time totals of that game.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	current int
	order   roundOrder
	scores  []storage.ScoreEntry
	summary storage.Summary
	table   table.Model
	help    help.Model
	keys    boardKeys
	width   int
	height  int
	done    bool
	back    bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 6},
			{Title: "Hits", Width: 5},
			{Title: "Wrong", Width: 5},
			{Title: "Acc", Width: 5},
			{Title: "Time", Width: 6},
			{Title: "Played", Width: 11},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// reload fetches the rounds and totals of the current game.
// A missing store or a failed query shows an empty board.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.summary = storage.Summary{}
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if m.order == orderRecent {
			if all, err := m.store.AllScores(id); err == nil {
				// IDs grow with every saved round.
				slices.SortFunc(all, func(a, b storage.ScoreEntry) int { return cmp.Compare(b.ID, a.ID) })
				m.scores = all[:min(len(all), boardRounds)]
			}
		} else if top, err := m.store.TopScores(id, boardRounds); err == nil {
			m.scores = top
		}
		if sum, err := m.store.Summary(id); err == nil {
			m.summary = sum
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Hits),
			strconv.Itoa(s.Wrong),
			fmt.Sprintf("%.0f%%", s.Accuracy()*100),
			formatDuration(s.Duration),
			s.CreatedAt.Local().Format("01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchGame moves to the next or previous game, wrapping around.
func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	n := len(m.games)
	m.current = ((m.current+step)%n + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.done, m.back = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Switch):
			switch msg.String() {
			case "shift+tab", "left", "h":
				m.switchGame(-1)
			default:
				m.switchGame(1)
			}
			return m, nil
		case key.Matches(msg, m.keys.Order):
			m.order = 1 - m.order
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		m.renderBody(),
		"",
		boardDimStyle.Render(m.help.View(m.keys)),
	)
}

// renderHeader shows the title, one tab per game and the current order.
func (m ScoreboardModel) renderHeader() string {
	tabs := make([]string, 0, len(m.games))
	for i, g := range m.games {
		title := g.Title
		if m.width < sideBySideMinW {
			title = truncate(title, 8)
		}
		if i == m.current {
			tabs = append(tabs, boardActiveTab.Render(title))
		} else {
			tabs = append(tabs, boardTabStyle.Render(title))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		boardTitleStyle.Render("SCORES "),
		strings.Join(tabs, " "),
		boardDimStyle.Render("  ("+m.order.String()+")"),
	)
	return centerText(line, m.width)
}

func (m ScoreboardModel) renderBody() string {
	rounds := boardDimStyle.Italic(true).Padding(1, 2).
		Render("No rounds yet.\nFinish a round with a score to see it here.")
	if len(m.scores) > 0 {
		rounds = m.table.View()
	}
	rounds = boardBoxStyle.Render(rounds)

	if m.width >= sideBySideMinW {
		return lipgloss.JoinHorizontal(lipgloss.Top, rounds, " ", m.renderStats())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rounds, m.renderStats())
}

// renderStats is the all-time panel of the current game.
func (m ScoreboardModel) renderStats() string {
	sum := m.summary
	lines := []string{boardTitleStyle.Render("All rounds")}
	if sum.Rounds == 0 {
		lines = append(lines, boardDimStyle.Render("nothing played"))
	} else {
		lines = append(lines,
			statLine("rounds", strconv.Itoa(sum.Rounds)),
			statLine("best", strconv.Itoa(sum.BestScore)),
			statLine("hits", strconv.Itoa(sum.Hits)),
			statLine("wrong", strconv.Itoa(sum.Wrong)),
			statLine("crashes", strconv.Itoa(sum.Collisions)),
			statLine("accuracy", fmt.Sprintf("%.0f%%", sum.Accuracy()*100)),
			statLine("played", formatDuration(sum.PlayTime)),
		)
	}
	return boardBoxStyle.Width(statsPanelW).Render(strings.Join(lines, "\n"))
}

func statLine(label, value string) string {
	return fmt.Sprintf("%-9s%s", label, value)
}

// formatDuration renders a duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// RunScoreboard shows the scoreboard until the user leaves it.
// It reports whether they went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
