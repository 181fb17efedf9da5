package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halilatilla/web3-error-humanizer/business/humanizer/domain"
)

const historyLimit = 8

// ResolveFunc resolves a raw error string to a humanized result.
type ResolveFunc func(ctx context.Context, raw string) domain.HumanizedResult

// resultMsg carries a finished resolution back into the update loop.
type resultMsg struct {
	result domain.HumanizedResult
}

// entry is one resolved input in the history panel.
type entry struct {
	input  string
	result domain.HumanizedResult
	at     time.Time
}

// Model is the main Bubble Tea model for the explorer.
type Model struct {
	resolve ResolveFunc
	keys    KeyMap

	input   textinput.Model
	spin    spinner.Model
	history []entry

	resolving bool
	pending   string
	width     int
	quitting  bool
}

// New creates a new explorer model around the given resolver.
func New(resolve ResolveFunc) Model {
	ti := textinput.New()
	ti.Placeholder = `paste an error, e.g. execution reverted: UniswapV2Router: EXPIRED`
	ti.Focus()
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		resolve: resolve,
		keys:    DefaultKeyMap(),
		input:   ti,
		spin:    sp,
		history: make([]entry, 0, historyLimit),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// resolveCmd runs the resolver off the update loop.
func (m Model) resolveCmd(raw string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return resultMsg{result: m.resolve(ctx, raw)}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.history = m.history[:0]
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" || m.resolving {
				return m, nil
			}
			m.resolving = true
			m.pending = raw
			m.input.SetValue("")
			return m, tea.Batch(m.spin.Tick, m.resolveCmd(raw))
		}

	case resultMsg:
		m.resolving = false
		m.history = append([]entry{{
			input:  m.pending,
			result: msg.result,
			at:     time.Now(),
		}}, m.history...)
		if len(m.history) > historyLimit {
			m.history = m.history[:historyLimit]
		}
		m.pending = ""
		return m, nil

	case spinner.TickMsg:
		if !m.resolving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the explorer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("web3 error humanizer"))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.resolving {
		b.WriteString(fmt.Sprintf("%s resolving %s\n", m.spin.View(), RawStyle.Render(truncate(m.pending, 60))))
	}

	for _, e := range m.history {
		b.WriteString("\n")
		b.WriteString(renderEntry(e))
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter resolve • ctrl+l clear • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func renderEntry(e entry) string {
	var badge string
	switch e.result.Source {
	case domain.SourceLocal:
		badge = SourceLocalStyle.Render("LOCAL")
	case domain.SourceAI:
		badge = SourceAIStyle.Render("AI")
	default:
		badge = SourceFallbackStyle.Render("FALLBACK")
	}

	lines := []string{
		fmt.Sprintf("%s  %s", badge, MessageStyle.Render(e.result.Message)),
		RawStyle.Render("in: " + truncate(e.input, 70)),
	}
	if e.result.MatchedKey != "" {
		lines = append(lines, MatchedKeyStyle.Render("key: "+e.result.MatchedKey))
	}

	return BoxStyle.Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run starts the explorer and blocks until it exits.
func Run(resolve ResolveFunc) error {
	p := tea.NewProgram(New(resolve), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
