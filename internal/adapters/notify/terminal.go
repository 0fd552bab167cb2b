package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chirp/internal/ports"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Toast is a single transient message.
type Toast struct {
	Level   Level
	Message string
}

// Terminal prints toasts to a writer, or hands them to a sink while an
// interactive program owns the terminal.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	sink   func(Toast)
	styles map[Level]lipgloss.Style
}

var _ ports.Notifier = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out: out,
		styles: map[Level]lipgloss.Style{
			LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// SetOutput replaces the writer used when no sink is installed.
func (t *Terminal) SetOutput(out io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.out = out
}

// Redirect routes toasts to sink until the returned restore func is called.
func (t *Terminal) Redirect(sink func(Toast)) (restore func()) {
	t.mu.Lock()
	previous := t.sink
	t.sink = sink
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		t.sink = previous
		t.mu.Unlock()
	}
}

func (t *Terminal) Success(message string) { t.emit(Toast{Level: LevelSuccess, Message: message}) }
func (t *Terminal) Error(message string)   { t.emit(Toast{Level: LevelError, Message: message}) }
func (t *Terminal) Info(message string)    { t.emit(Toast{Level: LevelInfo, Message: message}) }

func (t *Terminal) Render(toast Toast) string {
	return t.styles[toast.Level].Render(prefix(toast.Level) + toast.Message)
}

func (t *Terminal) emit(toast Toast) {
	t.mu.Lock()
	sink := t.sink
	t.mu.Unlock()

	if sink != nil {
		sink(toast)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.out == nil {
		return
	}
	_, _ = fmt.Fprintln(t.out, t.Render(toast))
}

func prefix(level Level) string {
	switch level {
	case LevelSuccess:
		return "✓ "
	case LevelError:
		return "✗ "
	default:
		return "• "
	}
}
