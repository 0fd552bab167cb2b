package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadDoneMsg struct {
	value any
	err   error
}

type loadingModel struct {
	spinner spinner.Model
	label   string
	load    tea.Cmd
	result  loadDoneMsg
	done    bool
}

func newLoadingModel(label string, load tea.Cmd) loadingModel {
	return loadingModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: label,
		load:  load,
	}
}

func (m loadingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m loadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadDoneMsg:
		m.done = true
		m.result = msg
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loadingModel) View() string {
	if m.done {
		return ""
	}

	return m.spinner.View() + " " + m.label
}

// withSpinner shows label on output while load runs. The loaded value is
// returned together with load's error so partial results can still be shown.
func withSpinner[T any](ctx context.Context, output io.Writer, label string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	loadCmd := func() tea.Msg {
		value, err := load(ctx)
		return loadDoneMsg{value: value, err: err}
	}

	p := tea.NewProgram(
		newLoadingModel(label, loadCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	result, ok := finalModel.(loadingModel)
	if !ok {
		return zero, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	value, _ := result.result.value.(T)
	return value, result.result.err
}
