package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/token"
)

const replHistoryLimit = 200

var (
	replPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	replTokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	replKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	replErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	replHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type replModel struct {
	input          textinput.Model
	history        []string
	lineNo         int
	maxDiagnostics int
	quitting       bool
}

// NewReplModel returns a Bubble Tea model for the interactive token prompt.
func NewReplModel(maxDiagnostics int) tea.Model {
	ti := textinput.New()
	ti.Prompt = replPromptStyle.Render("lox> ")
	ti.Placeholder = "var answer = 42;"
	ti.Focus()
	ti.CharLimit = 0

	return &replModel{
		input:          ti,
		lineNo:         1,
		maxDiagnostics: maxDiagnostics,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.pushEntry(line)
			m.lineNo++
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	for _, entry := range m.history {
		b.WriteString(entry)
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(replHintStyle.Render("enter tokenizes a line; ctrl+d exits"))
	b.WriteString("\n")
	return b.String()
}

// pushEntry токенизирует строку и добавляет отрендеренный блок в историю.
func (m *replModel) pushEntry(line string) {
	name := fmt.Sprintf("repl:%d", m.lineNo)
	res := driver.TokenizeSource(name, []byte(line), m.maxDiagnostics)

	var b strings.Builder
	b.WriteString(replPromptStyle.Render("lox> "))
	b.WriteString(line)
	b.WriteString("\n")

	for _, tok := range res.Tokens {
		if tok.Kind == token.EOF {
			break
		}
		b.WriteString("  ")
		b.WriteString(replKindStyle.Render(tok.Kind.String()))
		if tok.Lexeme != "" {
			b.WriteString(replTokenStyle.Render(fmt.Sprintf(" %q", tok.Lexeme)))
		}
		b.WriteString("\n")
	}

	if res.Bag.Len() > 0 {
		var diagBuf strings.Builder
		diagfmt.Pretty(&diagBuf, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Context:   1,
			ShowNotes: true,
		})
		b.WriteString(replErrStyle.Render(diagBuf.String()))
	}

	m.history = append(m.history, b.String())
	if len(m.history) > replHistoryLimit {
		m.history = m.history[len(m.history)-replHistoryLimit:]
	}
}
