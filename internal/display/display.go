// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type manages a persistent navigation/status bar and an input
// prompt at the bottom of the terminal. All application output is
// printed above the rendered area via Program.Println, so concurrent
// writes never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/koji/internal/domain"
)

// DefaultPrompt is the plain-text input prompt.
const DefaultPrompt = "koji> "

// refreshInterval is how often the status bar re-reads its source.
const refreshInterval = 500 * time.Millisecond

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	navActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	navIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	dirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Hints, metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))
)

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI], optionally [UI.Watch], then [UI.Run] (blocking). Other
// goroutines may safely call the print helpers and read from
// [UI.InputChan] at any time after [UI.WaitReady] returns.
type UI struct {
	program *tea.Program
	inputCh chan string
	readyCh chan struct{}
	quitCh  chan struct{}
	src     domain.StatusSource
	prompt  string
	done    atomic.Bool
}

// Option configures a UI.
type Option func(*UI)

// WithPrompt replaces the input prompt. Keep it free of escape codes.
func WithPrompt(p string) Option {
	return func(u *UI) {
		if p != "" {
			u.prompt = p
		}
	}
}

// NewUI creates the display. Call Run() to start.
func NewUI(opts ...Option) *UI {
	u := &UI{
		inputCh: make(chan string, 16),
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
		prompt:  DefaultPrompt,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Watch sets the source the status bar reads. Must be called before Run.
func (u *UI) Watch(src domain.StatusSource) {
	u.src = src
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, or has already stopped, falls back
// to fmt.Println.
func (u *UI) Println(a ...any) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// InputChan returns completed user-input lines.
func (u *UI) InputChan() <-chan string { return u.inputCh }

// ── Styled print helpers ─────────────────────────────────────────

// PrintChat prints a conversational line.
func (u *UI) PrintChat(text string) {
	u.Println(chatStyle.Render("  " + text))
}

// PrintHeader prints a section header like "Recipes" or "Ingredients:".
func (u *UI) PrintHeader(text string) {
	u.Println(headerStyle.Render("  " + text))
}

// PrintLine prints primary content.
func (u *UI) PrintLine(text string) {
	u.Println(primaryStyle.Render("  " + text))
}

// PrintHint prints a secondary/dimmed line.
func (u *UI) PrintHint(text string) {
	u.Println(secondaryStyle.Render("  " + text))
}

// PrintUrgent prints an error line.
func (u *UI) PrintUrgent(text string) {
	u.Println(urgentOutputStyle.Render("  " + text))
}

// PrintUserInput echoes the user's typed command into the scrollback.
func (u *UI) PrintUserInput(text string) {
	u.Println(promptStyle.Render(u.prompt) + userInputEchoStyle.Render(text))
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt: lipgloss escapes in the prompt break the
	// textinput width math for long input.
	ti.Prompt = u.prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60 // updated on first WindowSizeMsg

	m := model{
		src:       u.src,
		promptLen: len(u.prompt),
		input:     ti,
		inputCh:   u.inputCh,
		readyCh:   u.readyCh,
		echoFn: func(v string) {
			u.PrintUserInput(v)
		},
	}
	m.refresh()

	u.program = tea.NewProgram(m)
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	src     domain.StatusSource
	input   textinput.Model
	inputCh chan<- string
	readyCh chan struct{}
	echoFn  func(string) // prints user input into scrollback
	status  domain.Status
	width   int

	promptLen int
}

type tickMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			// Blank lines are forwarded too: they matter while the shell
			// is collecting multi-line ingredients or steps.
			m.inputCh <- v
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			// Echo from a Cmd so it runs outside Update.
			echoFn := m.echoFn
			return m, func() tea.Msg {
				echoFn(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > m.promptLen {
			m.input.Width = msg.Width - m.promptLen
		}
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tea.Batch(tickCmd(), tea.SetWindowTitle(m.titleStr()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) refresh() {
	if m.src == nil {
		return
	}
	m.status = m.src.Status()
}

func (m model) titleStr() string {
	if !m.status.EditorOpen {
		return "Koji"
	}
	title := m.status.DraftTitle
	if title == "" {
		title = "untitled"
	}
	if m.status.Dirty {
		title += "*"
	}
	return "Koji — " + title
}

func (m model) View() string {
	var b strings.Builder
	if m.src != nil {
		b.WriteString(m.renderBar())
		b.WriteByte('\n')
	}
	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	var nav []string
	for _, v := range domain.Views() {
		if v == m.status.View {
			nav = append(nav, navActiveStyle.Render("["+v.Label()+"]"))
		} else {
			nav = append(nav, navIdleStyle.Render(v.Label()))
		}
	}

	parts := []string{
		strings.Join(nav, " "),
		labelStyle.Render(fmt.Sprintf("%d recipes", m.status.RecipeCount)),
	}
	if m.status.EditorOpen {
		title := m.status.DraftTitle
		if title == "" {
			title = "untitled"
		}
		draft := draftStyle.Render(fmt.Sprintf("%s: %s", m.status.EditorMode, title))
		if m.status.Dirty {
			draft += dirtyStyle.Render(" (unsaved)")
		}
		parts = append(parts, draft)
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}
