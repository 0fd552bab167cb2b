package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalWritesToasts(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	notifier := NewTerminal(&out)

	notifier.Success("Post deleted successfully")
	notifier.Error("Failed to delete post")
	notifier.Info("Logged out")

	assert.Contains(t, out.String(), "✓ Post deleted successfully")
	assert.Contains(t, out.String(), "✗ Failed to delete post")
	assert.Contains(t, out.String(), "• Logged out")
}

func TestTerminalRedirectToSink(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	notifier := NewTerminal(&out)

	var got []Toast
	restore := notifier.Redirect(func(toast Toast) { got = append(got, toast) })
	notifier.Error("Login session is invalid")
	restore()
	notifier.Success("back on stderr")

	require.Len(t, got, 1)
	assert.Equal(t, Toast{Level: LevelError, Message: "Login session is invalid"}, got[0])
	assert.NotContains(t, out.String(), "Login session is invalid")
	assert.Contains(t, out.String(), "back on stderr")
}

func TestTerminalWithoutWriterDropsToasts(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { NewTerminal(nil).Info("ignored") })
}
