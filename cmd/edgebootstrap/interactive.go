package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectPage modelState = iota
	stateShowResult
)

type interactiveModel struct {
	b        *builder
	files    []string
	results  []pageResult
	view     viewport.Model
	selected int
	state    modelState
	loaded   bool
}

type builtMsg struct {
	results []pageResult
}

func newInteractiveModel(b *builder, files []string) *interactiveModel {
	return &interactiveModel{
		b:     b,
		files: files,
		state: stateSelectPage,
		view:  viewport.New(80, 20),
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.buildAll
}

func (m *interactiveModel) buildAll() tea.Msg {
	ctx := context.Background()
	results := make([]pageResult, len(m.files))
	for i, f := range m.files {
		results[i] = m.b.build(ctx, f)
	}
	return builtMsg{results: results}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-4, 1)

	case builtMsg:
		m.results = msg.results
		m.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectPage && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectPage && m.selected < len(m.results)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectPage && m.loaded && len(m.results) > 0 {
				m.view.SetContent(renderResult(m.results[m.selected]))
				m.view.GotoTop()
				m.state = stateShowResult
				return m, nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateSelectPage
				return m, nil
			}
		}
	}

	if m.state == stateShowResult {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func renderResult(res pageResult) string {
	var b strings.Builder
	if res.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", res.err)))
		return b.String()
	}
	b.WriteString(pathStyle.Render(res.bootstrap.Path().String()))
	b.WriteString("\n\n")
	b.Write(res.content)
	b.WriteString("\n\n")
	b.WriteString(pathStyle.Render(res.output.Path().String()))
	b.WriteString("\n")
	for _, f := range res.files {
		b.WriteString("  ")
		b.WriteString(fileStyle.Render(f))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *interactiveModel) View() string {
	if !m.loaded {
		return "Running edge transition..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Edge Bootstrap"))
	b.WriteString(" ")
	b.WriteString(m.b.cfg.ProjectRoot)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPage:
		for i, res := range m.results {
			line := m.files[i]
			if res.err != nil {
				line += "  " + errStyle.Render("failed")
			} else {
				line += "  → " + fileStyle.Render(res.bootstrap.Path().Base())
			}
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter show • q quit"))

	case stateShowResult:
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(b *builder, files []string) error {
	p := tea.NewProgram(newInteractiveModel(b, files), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
