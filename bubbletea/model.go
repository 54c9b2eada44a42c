package bubbletea

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/threadview"
)

var _ tea.Model = Model{}

// Config holds TUI display settings.
type Config struct {
	// Animate fades rows out and in when a conversation is toggled.
	// When false the list is replaced wholesale.
	Animate bool
	// AnimationStep is the duration of each fade phase.
	AnimationStep time.Duration
	// ScrollDelay is how long after the first layout the list scrolls to
	// its last row. Zero disables the scroll.
	ScrollDelay time.Duration
}

// DefaultConfig returns the default display settings.
func DefaultConfig() Config {
	return Config{
		Animate:       true,
		AnimationStep: 150 * time.Millisecond,
		ScrollDelay:   time.Second,
	}
}

// Model is the Bubble Tea model for the conversation list.
type Model struct {
	// Viewport is the scrollable list area. Exported for test access.
	Viewport viewport.Model
	// Help renders the key hints in the status line.
	Help help.Model

	tree   *threadview.Tree
	keys   KeyMap
	styles Styles
	config Config
	logger *slog.Logger

	entries []threadview.Entry // current projection
	cursor  int                // index into entries

	anim    transition
	animSeq int

	// offsets[i] is the first content line of displayed row i.
	offsets []int
	// rendered counts the rows drawn by the last render.
	rendered int
	ready    bool
}

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseRemoving
	phaseInserting
)

// transition is an in-flight row animation. While removing, the previous
// projection is shown with the removed rows fading; while inserting, the
// current projection is shown with the inserted rows fading.
type transition struct {
	seq     int
	phase   transitionPhase
	from    []threadview.Entry
	changes threadview.Changes
}

// New creates a Model showing tree. A nil logger discards records.
func New(tree *threadview.Tree, theme threadview.Theme, config Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		Help:    help.New(),
		tree:    tree,
		keys:    DefaultKeyMap(),
		styles:  NewStyles(theme),
		config:  config,
		logger:  logger,
		entries: tree.Project(),
	}
}

// Entries returns the current projection.
func (m Model) Entries() []threadview.Entry { return m.entries }

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int { return m.cursor }

// Animating returns whether a row transition is in progress.
func (m Model) Animating() bool { return m.anim.phase != phaseIdle }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnimationMsg:
		return m.advanceTransition(msg)

	case ScrollToBottomMsg:
		m.Viewport.GotoBottom()
		return m.render(), nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	statusHeight := 1
	vpHeight := max(msg.Height-statusHeight, 1)

	var cmd tea.Cmd
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
		if m.config.ScrollDelay > 0 {
			cmd = tea.Tick(m.config.ScrollDelay, func(time.Time) tea.Msg {
				return ScrollToBottomMsg{}
			})
		}
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Help.Width = msg.Width

	return m.refresh(), cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(m.cursor - 1), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(m.cursor + 1), nil
	case key.Matches(msg, m.keys.PageUp):
		return m.moveCursor(m.cursor - m.pageRows()), nil
	case key.Matches(msg, m.keys.PageDown):
		return m.moveCursor(m.cursor + m.pageRows()), nil
	case key.Matches(msg, m.keys.Home):
		return m.moveCursor(0), nil
	case key.Matches(msg, m.keys.End):
		return m.moveCursor(len(m.entries) - 1), nil
	case key.Matches(msg, m.keys.Select):
		return m.selectRow(m.cursor)
	}
	return m, nil
}

// handleMouse scrolls on the wheel and selects the row under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if !m.ready || msg.Y < 0 || msg.Y >= m.Viewport.Height {
			return m, nil
		}
		row := m.entryAtLine(msg.Y + m.Viewport.YOffset)
		if row < 0 {
			return m, nil
		}
		m = m.moveCursor(row)
		return m.selectRow(row)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m.render(), cmd
}

// rowAtLine returns the displayed row covering content line y, or -1.
func (m Model) rowAtLine(y int) int {
	if y < 0 || len(m.offsets) == 0 {
		return -1
	}
	rows, _, _ := m.displayed()
	i, found := slices.BinarySearch(m.offsets, y)
	if !found {
		i--
	}
	if i < 0 || y >= m.offsets[i]+rowHeight(rows[i]) {
		return -1
	}
	return i
}

// entryAtLine maps content line y to an index into the current
// projection. A row that is fading out has no entry and yields -1.
func (m Model) entryAtLine(y int) int {
	row := m.rowAtLine(y)
	if row < 0 || m.anim.phase != phaseRemoving {
		return row
	}
	want := threadview.EntryKey(m.anim.from[row])
	for i, e := range m.entries {
		if threadview.EntryKey(e) == want {
			return i
		}
	}
	return -1
}

// pageRows is the number of conversation rows that fit in the viewport.
func (m Model) pageRows() int {
	return max(m.Viewport.Height/ConversationRowHeight, 1)
}

func (m Model) moveCursor(to int) Model {
	if len(m.entries) == 0 {
		return m
	}
	m.cursor = min(max(to, 0), len(m.entries)-1)
	return m.refresh()
}

// selectRow toggles the conversation at row i. Message rows are inert.
func (m Model) selectRow(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.entries) {
		return m, nil
	}
	ce, ok := m.entries[i].(threadview.ConversationEntry)
	if !ok {
		return m, nil
	}
	m.tree.Toggle(ce.Conversation)
	m.logger.Debug("toggled conversation",
		"title", ce.Conversation.Title,
		"expanded", ce.Conversation.Expanded())
	return m.rebuild(ce.Conversation)
}

// rebuild reprojects the tree and keeps the cursor on focus. With
// animation on, the diff between the old and new projection drives a
// two-phase transition; otherwise the list is replaced wholesale.
func (m Model) rebuild(focus *threadview.Conversation) (Model, tea.Cmd) {
	from := m.entries
	m.entries = m.tree.Project()
	m.cursor = indexOfConversation(m.entries, focus)
	m.anim = transition{}

	var cmd tea.Cmd
	if m.config.Animate && m.config.AnimationStep > 0 {
		changes := threadview.DiffEntries(from, m.entries)
		m.logger.Debug("projection changed",
			"removed", len(changes.Removed),
			"inserted", len(changes.Inserted),
			"rows", len(m.entries))
		if !changes.Empty() {
			m.animSeq++
			m.anim = transition{
				seq:     m.animSeq,
				phase:   phaseRemoving,
				from:    from,
				changes: changes,
			}
			if len(changes.Removed) == 0 {
				m.anim.phase = phaseInserting
			}
			cmd = m.tick()
		}
	}

	return m.refresh(), cmd
}

func (m Model) tick() tea.Cmd {
	seq := m.anim.seq
	return tea.Tick(m.config.AnimationStep, func(time.Time) tea.Msg {
		return AnimationMsg{Seq: seq}
	})
}

func (m Model) advanceTransition(msg AnimationMsg) (tea.Model, tea.Cmd) {
	if m.anim.phase == phaseIdle || msg.Seq != m.anim.seq {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.anim.phase {
	case phaseRemoving:
		if len(m.anim.changes.Inserted) > 0 {
			m.anim.phase = phaseInserting
			cmd = m.tick()
		} else {
			m.anim = transition{}
		}
	case phaseInserting:
		m.anim = transition{}
	}

	return m.refresh(), cmd
}

// displayed returns the rows to draw, the fading row indices, and the
// row under the cursor.
func (m Model) displayed() ([]threadview.Entry, []int, int) {
	switch m.anim.phase {
	case phaseRemoving:
		cursor := -1
		if m.cursor < len(m.entries) {
			want := threadview.EntryKey(m.entries[m.cursor])
			for i, e := range m.anim.from {
				if threadview.EntryKey(e) == want {
					cursor = i
					break
				}
			}
		}
		return m.anim.from, m.anim.changes.Removed, cursor
	case phaseInserting:
		return m.entries, m.anim.changes.Inserted, m.cursor
	default:
		return m.entries, nil, m.cursor
	}
}

// refresh lays out the displayed rows, scrolls the cursor row into view,
// and renders.
func (m Model) refresh() Model {
	m = m.layout()
	m = m.ensureCursorVisible()
	return m.render()
}

// layout records the first content line of every displayed row. Row
// heights are fixed per variant, so nothing is rendered here.
func (m Model) layout() Model {
	rows, _, _ := m.displayed()
	offsets := make([]int, len(rows))
	line := 0
	for i, e := range rows {
		offsets[i] = line
		line += rowHeight(e)
	}
	m.offsets = offsets
	return m
}

func contentHeight(rows []threadview.Entry, offsets []int) int {
	n := len(rows)
	if n == 0 {
		return 0
	}
	return offsets[n-1] + rowHeight(rows[n-1])
}

// render draws the rows that intersect the viewport, plus one screen of
// margin either side, and leaves every other content line blank. The
// viewport still holds the full content height so scrolling and
// AtBottom behave as if everything were drawn.
func (m Model) render() Model {
	if !m.ready {
		return m
	}
	rows, fading, cursor := m.displayed()
	if len(m.offsets) != len(rows) {
		m = m.layout()
	}
	total := contentHeight(rows, m.offsets)

	lines := make([]string, total)
	margin := m.Viewport.Height
	top := max(m.Viewport.YOffset-margin, 0)
	bottom := m.Viewport.YOffset + m.Viewport.Height + margin

	first, found := slices.BinarySearch(m.offsets, top)
	if !found && first > 0 {
		first--
	}
	m.rendered = 0
	for i := first; i < len(rows) && m.offsets[i] < bottom; i++ {
		state := RowState{
			Selected: i == cursor,
			Fading:   slices.Contains(fading, i),
		}
		view := NewRow(rows[i], m.styles).View(m.Viewport.Width, state)
		copy(lines[m.offsets[i]:], strings.Split(view, "\n"))
		m.rendered++
	}
	m.Viewport.SetContent(strings.Join(lines, "\n"))
	return m
}

// ensureCursorVisible scrolls the viewport so the whole cursor row shows.
func (m Model) ensureCursorVisible() Model {
	rows, _, cursor := m.displayed()
	if !m.ready || cursor < 0 || cursor >= len(m.offsets) {
		return m
	}
	total := contentHeight(rows, m.offsets)
	top := m.offsets[cursor]
	bottom := top + rowHeight(rows[cursor]) - 1
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.YOffset = top
	case bottom >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.YOffset = bottom - m.Viewport.Height + 1
	}
	m.Viewport.YOffset = min(max(m.Viewport.YOffset, 0), max(total-m.Viewport.Height, 0))
	return m
}

func (m Model) statusLine() string {
	pos := "0/0"
	if len(m.entries) > 0 {
		pos = fmt.Sprintf("%d/%d", m.cursor+1, len(m.entries))
	}
	return m.styles.Muted.Render(pos) + "  " + m.Help.View(m.keys)
}

func indexOfConversation(entries []threadview.Entry, c *threadview.Conversation) int {
	for i, e := range entries {
		if ce, ok := e.(threadview.ConversationEntry); ok && ce.Conversation == c {
			return i
		}
	}
	return 0
}
