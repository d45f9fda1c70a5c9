package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glint-lang/glint/interp"
	"github.com/glint-lang/glint/repl"
)

var (
	accentColor = lipgloss.Color("#7C9BFF")
	errorColor  = lipgloss.Color("#FF6B6B")
	mutedColor  = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	helpStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

type historyLine struct {
	input  string
	output string
	isErr  bool
}

type replKeys struct {
	Up, Down, Quit, ClearHistory key.Binding
}

var keys = replKeys{
	Up:           key.NewBinding(key.WithKeys("up")),
	Down:         key.NewBinding(key.WithKeys("down")),
	Quit:         key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
	ClearHistory: key.NewBinding(key.WithKeys("ctrl+l")),
}

// replModel is the bubbletea Model for the interactive front end: one
// text input, a scrollback of prior input/output pairs, and the
// session (lexer/parser/resolver/interpreter) that evaluates each line.
type replModel struct {
	input      textinput.Model
	session    *replSession
	history    []historyLine
	cmdHistory []string
	historyIdx int
	quitting   bool
}

// replSession buffers Run's output so the TUI can render it inline
// instead of letting it race the terminal's redraw.
type replSession struct {
	*repl.Session
	buf *strings.Builder
}

func newReplSession(clock interp.ClockFn) *replSession {
	buf := &strings.Builder{}
	return &replSession{Session: repl.NewSession(buf, buf, clock), buf: buf}
}

func (s *replSession) eval(line string) (string, bool) {
	s.buf.Reset()
	s.Reporter.Reset()
	s.Run(line)
	isErr := s.Reporter.HadError || s.Reporter.HadRuntime
	return strings.TrimRight(s.buf.String(), "\n"), isErr
}

func runTUI(clock interp.ClockFn) {
	ti := textinput.New()
	ti.Placeholder = "glint expression or statement..."
	ti.Focus()
	ti.Prompt = "glint> "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 2000
	ti.Width = 72

	model := replModel{
		input:      ti,
		session:    newReplSession(clock),
		historyIdx: -1,
	}

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		panic(err)
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.ClearHistory):
		m.history = nil
		return m, nil

	case key.Matches(keyMsg, keys.Up):
		if len(m.cmdHistory) > 0 {
			if m.historyIdx == -1 {
				m.historyIdx = len(m.cmdHistory) - 1
			} else if m.historyIdx > 0 {
				m.historyIdx--
			}
			m.input.SetValue(m.cmdHistory[m.historyIdx])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(keyMsg, keys.Down):
		if m.historyIdx != -1 {
			if m.historyIdx < len(m.cmdHistory)-1 {
				m.historyIdx++
				m.input.SetValue(m.cmdHistory[m.historyIdx])
			} else {
				m.historyIdx = -1
				m.input.SetValue("")
			}
			m.input.CursorEnd()
		}
		return m, nil

	case keyMsg.Type == tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.SetValue("")
		m.historyIdx = -1
		if line == "" {
			return m, nil
		}
		output, isErr := m.session.eval(line)
		m.history = append(m.history, historyLine{input: line, output: output, isErr: isErr})
		m.cmdHistory = append(m.cmdHistory, line)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, h := range m.history {
		b.WriteString(promptStyle.Render("glint> ") + h.input + "\n")
		if h.output == "" {
			continue
		}
		if h.isErr {
			b.WriteString(errorStyle.Render(h.output) + "\n")
		} else {
			b.WriteString(outputStyle.Render(h.output) + "\n")
		}
	}
	b.WriteString(m.input.View() + "\n")
	b.WriteString(helpStyle.Render("ctrl+c quit · ctrl+l clear · up/down history"))
	return b.String()
}
