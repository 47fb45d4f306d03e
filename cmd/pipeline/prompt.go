package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

var errPromptCancelled = errors.New("no video URL entered")

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	promptMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type promptModel struct {
	input     textinput.Model
	value     string
	cancelled bool
}

func newPromptModel() promptModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "https://www.youtube.com/watch?v=..."
	input.CharLimit = 1024
	input.Width = 60
	input.Focus()
	return promptModel{input: input}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.value != "" || m.cancelled {
		return ""
	}
	return promptTitleStyle.Render("Enter YouTube video URL:") + "\n" +
		m.input.View() + "\n" +
		promptMutedStyle.Render("enter to confirm, esc to cancel") + "\n"
}

// promptReference asks for a video URL on out, reading keys from in.
func promptReference(in io.Reader, out io.Writer) (model.VideoReference, error) {
	p := tea.NewProgram(newPromptModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.cancelled || m.value == "" {
		return "", errPromptCancelled
	}
	return model.VideoReference(m.value), nil
}
