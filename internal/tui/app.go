package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chantrack/internal/client"
	"chantrack/internal/statusline"
	"chantrack/internal/track"
	"chantrack/internal/utils"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	authorStyle  = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
)

var demoChannels = []string{
	"#emacs", "#erlang", "#go-nuts", "#gophers", "#hurd", "#hurd-bunny", "alice",
}

// statusSink receives the tracker's "list changed" notifications. It is
// shared by pointer so it survives bubbletea's value-copied model.
type statusSink struct {
	entries []track.Entry
}

type tickMsg time.Time

type model struct {
	cfg         track.Config
	logger      *utils.Logger
	store       *client.ChannelStore
	tracker     *track.Tracker
	formatter   *statusline.Formatter
	settings    *client.SettingsStore
	transcripts *client.TranscriptStore
	feed        *client.Feed
	sink        *statusSink
	isExcluded  func(track.Context) bool

	width  int
	height int

	channelList  list.Model
	viewport     viewport.Model
	commandInput textinput.Model
	keys         keyMap
	help         help.Model
	spin         spinner.Model

	selected    track.Context
	commandMode bool
	showHelp    bool
	paused      bool
	errMsg      string
}

// Run wires the client, tracker and formatter together and starts the
// program.
func Run(cfg track.Config, dataDir string, seed int64, logger *utils.Logger) error {
	tracker, err := track.New(cfg)
	if err != nil {
		return err
	}

	store := client.NewChannelStore()
	transcripts := client.NewTranscriptStore(dataDir)
	for _, name := range demoChannels {
		ch := store.Create(name)
		ch.History = transcripts.Load(name)
	}

	settings := client.NewSettingsStore(dataDir, logger)
	if err := settings.Load(); err != nil {
		logger.Warnf("failed to load settings: %v", err)
	}

	sink := &statusSink{}
	tracker.SetListener(func(entries []track.Entry) {
		sink.entries = entries
	})

	formatter := statusline.New(statusline.Options{
		MinLength:   cfg.Shorten.MinLength,
		Mode:        modeFromString(settings.Get().ShortenMode, cfg.ShortenMode()),
		ShowCounts:  settings.Get().ShowCounts,
		Shortenable: func(name string) bool { return strings.HasPrefix(name, "#") },
		Colors:      cfg.Colors,
	})

	excluded := make(map[string]bool, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		excluded[name] = true
	}
	included := make(map[string]bool, len(cfg.Include))
	for _, name := range cfg.Include {
		included[name] = true
	}

	spin := spinner.New()
	spin.Spinner = spinner.Line
	spin.Style = dimStyle

	commandInput := textinput.New()
	commandInput.Placeholder = "sort activity | shorten max | counts | read | quit"
	commandInput.Prompt = "/ "

	m := model{
		cfg:          cfg,
		logger:       logger,
		store:        store,
		tracker:      tracker,
		formatter:    formatter,
		settings:     settings,
		transcripts:  transcripts,
		feed:         client.NewFeed(store, seed),
		sink:         sink,
		channelList:  newChannelList(),
		viewport:     viewport.New(0, 0),
		commandInput: commandInput,
		keys:         defaultKeyMap,
		help:         help.New(),
		spin:         spin,
	}
	m.installContentFilter(excluded, included)
	m.refreshChannelList()

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(model); ok {
		fm.saveTranscripts()
	}
	return err
}

// installContentFilter pre-computes the per-channel exclusion decision
// used on every content event.
func (m *model) installContentFilter(excluded, included map[string]bool) {
	store := m.store
	m.isExcluded = func(ctx track.Context) bool {
		name := store.Name(ctx)
		if excluded[name] {
			return true
		}
		if len(included) > 0 && !included[name] {
			return true
		}
		return false
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spin.Tick)
}

func tickCmd() tea.Cmd {
	return tea.Tick(800*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		if !m.paused {
			m.pumpFeed()
		}
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.commandMode {
			return m.updateCommand(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Command):
			m.commandMode = true
			m.commandInput.Focus()
			return m, nil
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if item, ok := m.channelList.SelectedItem().(channelItem); ok {
				m.open(item.ch.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.jump(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.jump(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.cycleSort()
			return m, nil
		case key.Matches(msg, m.keys.Shorten):
			m.cycleShorten()
			return m, nil
		case key.Matches(msg, m.keys.Counts):
			m.toggleCounts()
			return m, nil
		case key.Matches(msg, m.keys.ReadAll):
			m.tracker.OnVisibilityChange(func(track.Context) bool { return true })
			m.refreshChannelList()
			return m, nil
		case key.Matches(msg, m.keys.Disconnect):
			m.dropConnection()
			return m, nil
		case key.Matches(msg, m.keys.Reconnect):
			m.reconnect()
			return m, nil
		case key.Matches(msg, m.keys.Destroy):
			m.destroyChannel()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.channelList, cmd = m.channelList.Update(msg)
	return m, cmd
}

// pumpFeed pulls one synthetic event and routes it through the tracker
// exactly the way a real client would route incoming traffic.
func (m *model) pumpFeed() {
	ev, ok := m.feed.Next()
	if !ok {
		return
	}
	ch, _ := m.store.Get(ev.Channel)
	if ch != nil && !ch.Connected {
		return
	}
	visible := ev.Channel == m.selected
	m.tracker.OnContent(ev.Channel, ev.Message.Tags, visible, m.isExcluded(ev.Channel))
	if visible {
		m.renderTranscript()
	}
	m.refreshChannelList()
}

func (m *model) open(ctx track.Context) {
	if !m.store.Exists(ctx) {
		return
	}
	if m.selected != "" && m.selected != ctx {
		prev := m.store.Name(m.selected)
		m.settings.Update(func(s *client.Settings) { s.LastChannel = prev })
	}
	m.selected = ctx
	// Opening a channel reads it; sweep its entry along with any
	// handle whose channel has meanwhile been destroyed.
	m.tracker.OnVisibilityChange(func(c track.Context) bool {
		return c == ctx || !m.store.Exists(c)
	})
	m.renderTranscript()
	m.refreshChannelList()
}

// jump cycles to the next (or previous, for negative steps) context in
// the user's configured order, falling back to the channel we came
// from when nothing is tracked anymore.
func (m *model) jump(step int) {
	dir := m.direction()
	if ctx, ok := m.tracker.Next(dir, step); ok {
		m.open(ctx)
		return
	}
	if last := m.settings.Get().LastChannel; last != "" {
		if ch, ok := m.store.ByName(last); ok {
			m.open(ch.ID)
		}
	}
}

func (m model) direction() track.Direction {
	switch m.settings.Get().SortPolicy {
	case "activity":
		return track.MostActive
	case "importance":
		return track.Importance
	default:
		return track.Newest
	}
}

func (m model) sortPolicy() track.SortPolicy {
	switch m.settings.Get().SortPolicy {
	case "activity":
		return track.SortActivity
	case "importance":
		return track.SortImportance
	default:
		return track.SortInsertion
	}
}

func (m *model) cycleSort() {
	m.settings.Update(func(s *client.Settings) {
		switch s.SortPolicy {
		case "insertion":
			s.SortPolicy = "activity"
		case "activity":
			s.SortPolicy = "importance"
		default:
			s.SortPolicy = "insertion"
		}
	})
}

func (m *model) cycleShorten() {
	next := map[track.Aggressiveness]track.Aggressiveness{
		track.ShortenOff: track.ShortenOn,
		track.ShortenOn:  track.ShortenMax,
		track.ShortenMax: track.ShortenOff,
	}[m.formatter.Mode()]
	m.formatter.SetMode(next)
	m.settings.Update(func(s *client.Settings) { s.ShortenMode = modeString(next) })
}

func (m *model) toggleCounts() {
	m.formatter.SetShowCounts(!m.formatter.ShowCounts())
	m.settings.Update(func(s *client.Settings) { s.ShowCounts = m.formatter.ShowCounts() })
}

func (m *model) dropConnection() {
	if item, ok := m.channelList.SelectedItem().(channelItem); ok {
		m.store.SetConnected(item.ch.ID, false)
		m.tracker.OnDisconnect(item.ch.ID)
		m.refreshChannelList()
	}
}

func (m *model) reconnect() {
	item, ok := m.channelList.SelectedItem().(channelItem)
	if !ok {
		return
	}
	old := item.ch.ID
	newID, ok := m.store.Replace(old)
	if !ok {
		return
	}
	m.tracker.OnContextReplaced(old, newID)
	if m.selected == old {
		m.selected = newID
	}
	m.refreshChannelList()
}

func (m *model) destroyChannel() {
	item, ok := m.channelList.SelectedItem().(channelItem)
	if !ok {
		return
	}
	id := item.ch.ID
	m.store.Remove(id)
	m.tracker.OnContextDestroyed(id)
	if m.selected == id {
		m.selected = ""
	}
	m.refreshChannelList()
}

func (m *model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commandMode = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		return *m, nil
	case "enter":
		input := strings.TrimSpace(m.commandInput.Value())
		m.commandMode = false
		m.commandInput.Blur()
		m.commandInput.SetValue("")
		cmd := m.applyCommand(input)
		return *m, cmd
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return *m, cmd
}

func (m *model) applyCommand(input string) tea.Cmd {
	if input == "" {
		return nil
	}
	parts := strings.Fields(strings.TrimLeft(input, "/"))
	if len(parts) == 0 {
		return nil
	}
	m.errMsg = ""
	switch parts[0] {
	case "sort":
		if len(parts) != 2 || !validSort(parts[1]) {
			m.errMsg = "usage: /sort insertion|activity|importance"
			return nil
		}
		m.settings.Update(func(s *client.Settings) { s.SortPolicy = parts[1] })
	case "shorten":
		if len(parts) != 2 {
			m.errMsg = "usage: /shorten off|on|max"
			return nil
		}
		mode, ok := parseMode(parts[1])
		if !ok {
			m.errMsg = "usage: /shorten off|on|max"
			return nil
		}
		m.formatter.SetMode(mode)
		m.settings.Update(func(s *client.Settings) { s.ShortenMode = parts[1] })
	case "counts":
		m.toggleCounts()
	case "read":
		m.tracker.OnVisibilityChange(func(track.Context) bool { return true })
		m.refreshChannelList()
	case "quit", "q":
		return tea.Quit
	default:
		m.errMsg = fmt.Sprintf("unknown command: %s", parts[0])
	}
	return nil
}

func (m *model) refreshChannelList() {
	m.channelList.SetItems(buildChannelItems(m.store, m.tracker))
}

func (m *model) renderTranscript() {
	ch, ok := m.store.Get(m.selected)
	if !ok {
		m.viewport.SetContent(dimStyle.Render("no channel open"))
		return
	}
	lines := make([]string, 0, len(ch.History))
	for _, msg := range ch.History {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			dimStyle.Render(msg.Timestamp.Format("15:04:05")),
			authorStyle.Render("<"+msg.Author+">"),
			msg.Text))
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("no messages yet"))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) resize() {
	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	bodyHeight := m.height - 6
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	m.channelList.SetSize(listWidth, bodyHeight)
	m.viewport.Width = m.width - listWidth - 1
	m.viewport.Height = bodyHeight
	m.renderTranscript()
}

func (m model) View() string {
	header := headerStyle.Render("chantrack")
	if m.paused {
		header += dimStyle.Render("  (feed paused)")
	} else {
		header += "  " + m.spin.View()
	}

	current := "no channel open"
	if m.selected != "" {
		current = m.store.Name(m.selected)
	}
	headerLine := header + "  " + currentStyle.Render(current) + m.statusLine()

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.channelList.View(), " ", m.viewport.View())

	footer := footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.showHelp {
		footer = footerStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	}
	if m.commandMode {
		footer = m.commandInput.View()
	}

	errLine := ""
	if m.errMsg != "" {
		errLine = errStyle.Render(m.errMsg)
	}

	return strings.Join([]string{headerLine, "", body, errLine, footer}, "\n")
}

// statusLine renders the tracker summary from the last listener
// emission, ordered by the user's sort policy.
func (m model) statusLine() string {
	entries := append([]track.Entry(nil), m.sink.entries...)
	if len(entries) == 0 {
		return ""
	}
	track.SortEntries(entries, m.sortPolicy(), m.tracker.Ranking())
	segs := m.formatter.Segments(entries, m.store.Name, m.store.Names())
	return m.formatter.Render(segs, m.width/2)
}

func (m model) saveTranscripts() {
	for _, ch := range m.store.List() {
		if err := m.transcripts.Save(ch); err != nil {
			m.logger.Warnf("failed to save transcript for %s: %v", ch.Name, err)
		}
	}
}

func validSort(s string) bool {
	return s == "insertion" || s == "activity" || s == "importance"
}

func parseMode(s string) (track.Aggressiveness, bool) {
	switch s {
	case "off":
		return track.ShortenOff, true
	case "on":
		return track.ShortenOn, true
	case "max":
		return track.ShortenMax, true
	}
	return track.ShortenOff, false
}

func modeString(mode track.Aggressiveness) string {
	switch mode {
	case track.ShortenOff:
		return "off"
	case track.ShortenMax:
		return "max"
	default:
		return "on"
	}
}

func modeFromString(s string, fallback track.Aggressiveness) track.Aggressiveness {
	if mode, ok := parseMode(s); ok {
		return mode
	}
	return fallback
}
