package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stackgen/internal/config"
)

var (
	groupStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// promptModel is a bubbletea model that asks one question at a time.
// Blank answers fall back to the question default.
type promptModel struct {
	questions []config.Question
	idx       int
	inputs    []textinput.Model
	errMsg    string
	done      bool
}

func newPromptModel(questions []config.Question) promptModel {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Default
		ti.CharLimit = 512
		if q.Kind == config.KindSecret {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	m := promptModel{
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			q := m.questions[m.idx]
			if q.Kind == config.KindBool {
				if _, err := config.ParseYesNo(m.inputs[m.idx].Value(), false); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.errMsg = ""
			if m.idx < len(m.inputs)-1 {
				m.inputs[m.idx].Blur()
				m.idx++
				m.inputs[m.idx].Focus()
				return m, textinput.Blink
			}
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i <= m.idx; i++ {
		q := m.questions[i]
		if q.Group != "" {
			b.WriteString(groupStyle.Render(q.Group) + "\n")
		}
		if i < m.idx {
			b.WriteString(fmt.Sprintf("%s: %s\n", q.Prompt, m.answerView(i)))
			continue
		}
		b.WriteString(fmt.Sprintf("%s [%s]: %s\n", q.Prompt, q.Default, m.inputs[i].View()))
	}
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// answerView renders an answered question, masking secrets.
func (m promptModel) answerView(i int) string {
	v := m.inputs[i].Value()
	if v == "" {
		v = m.questions[i].Default
	}
	if m.questions[i].Kind == config.KindSecret {
		return strings.Repeat("*", len(v))
	}
	return v
}

// answers returns the raw input keyed by Question.Key.
func (m promptModel) answers() map[string]string {
	answers := make(map[string]string, len(m.questions))
	for i, q := range m.questions {
		answers[q.Key] = m.inputs[i].Value()
	}
	return answers
}

// promptQuestions runs the TUI and returns answers keyed by Question.Key.
func promptQuestions(questions []config.Question) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}
	m := newPromptModel(questions)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return nil, fmt.Errorf("prompt cancelled")
	}
	return final.answers(), nil
}
