// Package tui provides a Bubble Tea terminal user interface for the
// Open edX client.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hamzaanis/openedx-client/internal/config"
	"github.com/hamzaanis/openedx-client/internal/deeplink"
	"github.com/hamzaanis/openedx-client/internal/download"
	"github.com/hamzaanis/openedx-client/internal/i18n"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	videoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateCourse
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// navState is the navigation stack as deep links see it. Tab keys are
// translated into course deep links and routed through the resolver,
// so switching to the tab that is already on top is a no-op.
type navState struct {
	screen   deeplink.Type
	courseID string
	loggedIn bool
	notice   string
}

func (n *navState) LinkType() deeplink.Type { return n.screen }
func (n *navState) CourseID() string        { return n.courseID }

func (n *navState) TopScreen() deeplink.Screen {
	if n.screen == deeplink.TypeNone {
		return nil
	}
	return n
}

func (n *navState) ShowLogin() {
	n.screen = deeplink.TypeNone
	n.notice = "Sign in required"
}

func (n *navState) ShowCourse(t deeplink.Type, courseID string) {
	n.screen = t
	n.courseID = courseID
}

func (n *navState) SwitchCourseTab(t deeplink.Type) { n.screen = t }
func (n *navState) ShowPrograms()                   { n.screen = deeplink.TypePrograms }
func (n *navState) ShowAccount()                    { n.screen = deeplink.TypeAccount }
func (n *navState) DismissPresented()               {}

// sessionFunc adapts a closure to the deep link Session interface.
type sessionFunc func() bool

func (f sessionFunc) IsLoggedIn() bool { return f() }

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	textInput  textinput.Model
	spinner    spinner.Model
	progress   progress.Model
	settings   *config.Settings
	translator *i18n.Translator
	logs       []LogEntry
	videos     []string
	dates      *model.CourseDateModel
	err        error

	// Navigation and deep link routing
	nav      *navState
	resolver *deeplink.Resolver

	// Download context
	ctx    context.Context
	cancel context.CancelFunc

	// Download manager reference
	manager *download.Manager

	// Download progress
	totalFiles      int32
	downloadedFiles int32
	totalBytes      int64
	receivedBytes   int64

	// Options
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, translator *i18n.Translator) Model {
	ti := textinput.New()
	ti.Placeholder = "course-v1:edX+DemoX+Demo_Course"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	nav := &navState{screen: deeplink.TypeNone, loggedIn: settings.AccessToken != ""}
	resolver := deeplink.NewResolver(
		sessionFunc(func() bool { return nav.loggedIn }),
		settings,
		nav,
		nav,
	)

	return Model{
		state:      StateInput,
		textInput:  ti,
		spinner:    sp,
		progress:   prog,
		settings:   settings,
		translator: translator,
		logs:       make([]LogEntry, 0),
		nav:        nav,
		resolver:   resolver,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when download progress updates.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// InitDoneMsg is sent when initialization completes.
	InitDoneMsg struct {
		Videos  []string
		Dates   *model.CourseDateModel
		Manager *download.Manager
		Err     error
	}

	// DownloadDoneMsg is sent when all downloads complete.
	DownloadDoneMsg struct {
		Received int64
		Total    int64
		Files    int32
		TotalF   int32
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDownloading || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateInitializing
				return m, tea.Batch(m.initializeCourse(), m.spinner.Tick)
			}

		case "p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "1":
			if m.state == StateCourse {
				m.routeTab(deeplink.TypeCourseDashboard)
			}

		case "2":
			if m.state == StateCourse {
				m.routeTab(deeplink.TypeCourseVideos)
			}

		case "s":
			if m.state == StateCourse {
				m.state = StateDownloading
				cmds = append(cmds, m.startDownload(), m.tickProgress())
			}

		case "q":
			if m.state == StateCourse || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new course
				m.state = StateInput
				m.logs = nil
				m.videos = nil
				m.dates = nil
				m.err = nil
				m.downloadedFiles = 0
				m.totalFiles = 0
				m.receivedBytes = 0
				m.totalBytes = 0
				m.manager = nil
				m.nav.screen = deeplink.TypeNone
				m.nav.courseID = ""
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == download.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.videos = msg.Videos
			m.dates = msg.Dates
			m.manager = msg.Manager
			m.state = StateCourse
			m.nav.loggedIn = true
			m.routeTab(deeplink.TypeCourseDashboard)
		}

	case DownloadDoneMsg:
		m.receivedBytes = msg.Received
		m.totalBytes = msg.Total
		m.downloadedFiles = msg.Files
		m.totalFiles = msg.TotalF
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateDownloading {
			received, total, files, totalFiles := m.manager.GetProgress()
			m.receivedBytes = received
			m.totalBytes = total
			m.downloadedFiles = files
			m.totalFiles = totalFiles

			// Calculate percentage and animate progress bar
			var percent float64
			if totalFiles > 0 {
				percent = float64(files) / float64(totalFiles)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// routeTab dispatches a course tab change as a deep link.
func (m *Model) routeTab(t deeplink.Type) {
	m.resolver.ResolveLink(deeplink.Link{
		Type:     t,
		CourseID: m.textInput.Value(),
	})
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎓 Open edX Client"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Course dates and video downloads"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateCourse:
		b.WriteString(m.viewCourse())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter course ID:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	playlistCheck := "[ ]"
	if m.playlist {
		playlistCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create playlist (p)\n", playlistCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Download path: %s", m.settings.DownloadsPath)))
	b.WriteString("\n")
	if m.nav.notice != "" {
		b.WriteString(warningStyle.Render(m.nav.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching course info..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewCourse() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.nav.screen == deeplink.TypeCourseVideos {
		b.WriteString(m.renderVideos())
	} else {
		b.WriteString(m.renderDates())
	}

	return b.String()
}

func (m Model) renderTabs() string {
	dates := "Important Dates (1)"
	videos := "Videos (2)"
	if m.nav.screen == deeplink.TypeCourseVideos {
		return dimStyle.Render(dates) + "  " + activeTabStyle.Render(videos)
	}
	return activeTabStyle.Render(dates) + "  " + dimStyle.Render(videos)
}

func (m Model) renderDates() string {
	var b strings.Builder

	if m.dates == nil || len(m.dates.Blocks) == 0 {
		b.WriteString(dimStyle.Render("No course dates available"))
		b.WriteString("\n")
		return b.String()
	}

	if banner := m.translator.BannerMessage(m.dates.BannerStatus()); banner != "" {
		b.WriteString(warningStyle.Render(banner))
		b.WriteString("\n\n")
	}

	for _, block := range m.dates.Blocks {
		badge := m.translator.StatusLabel(block.Status())
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			infoStyle.Render(block.DateText),
			badgeStyle.Render("["+badge+"]"),
			block.Title,
		))
	}

	return b.String()
}

func (m Model) renderVideos() string {
	var b strings.Builder

	if len(m.videos) == 0 {
		b.WriteString(dimStyle.Render("No downloadable videos"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(successStyle.Render(fmt.Sprintf("Found %d video(s):", len(m.videos))))
	b.WriteString("\n")
	for _, video := range m.videos {
		b.WriteString(videoStyle.Render(fmt.Sprintf("  ▶ %s", video)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Quality: %s", m.translator.QualityLabel(m.settings.Quality()))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	// Progress bar
	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.downloadedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Downloaded: %.2f MB",
		m.downloadedFiles,
		m.totalFiles,
		float64(m.receivedBytes)/1024/1024,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Download Complete!\n\n"+
			"Videos: %d\n"+
			"Files: %d\n"+
			"Size: %.2f MB",
		len(m.videos),
		m.downloadedFiles,
		float64(m.receivedBytes)/1024/1024,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: load course • p: playlist • v: verbose • esc: quit"
	case StateInitializing:
		return "esc: cancel"
	case StateCourse:
		return "1/2: switch tab • s: start downloads • q: quit"
	case StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new course • q: quit"
	}
	return ""
}

// initializeCourse fetches course info and creates the manager.
func (m *Model) initializeCourse() tea.Cmd {
	return func() tea.Msg {
		courseID := m.textInput.Value()

		// Apply options
		settings := *m.settings
		if m.playlist {
			settings.CreatePlaylist = true
		}

		// Create manager with progress callback. Progress events are
		// collected but not sent directly; the TUI polls via TickMsg.
		manager := download.NewManager(&settings, func(event download.ProgressEvent) {})

		if err := manager.Initialize(m.ctx, courseID); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Videos:  manager.VideoNames(),
			Dates:   manager.Dates(),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startDownload starts the actual download in background.
func (m *Model) startDownload() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return DownloadDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := m.manager.StartDownloads(m.ctx)
		received, total, files, totalFiles := m.manager.GetProgress()

		return DownloadDoneMsg{
			Received: received,
			Total:    total,
			Files:    files,
			TotalF:   totalFiles,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, translator *i18n.Translator) error {
	p := tea.NewProgram(NewModel(settings, translator), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
