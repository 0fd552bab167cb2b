package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/ports"
)

type call struct {
	stdin string
	args  []string
}

func recordingStore(stdout, stderr string, err error) (*Store, *[]call) {
	calls := &[]call{}
	store := &Store{
		run: func(_ context.Context, stdin string, args ...string) (string, string, error) {
			*calls = append(*calls, call{stdin: stdin, args: args})
			return stdout, stderr, err
		},
	}
	return store, calls
}

func TestStorePutInsertsMultiline(t *testing.T) {
	t.Parallel()

	store, calls := recordingStore("", "", nil)

	require.NoError(t, store.Put(context.Background(), ports.SessionTokenKey, "token-1"))
	require.Len(t, *calls, 1)
	assert.Equal(t, call{stdin: "token-1\n", args: []string{"insert", "--multiline", "--force", ports.SessionTokenKey}}, (*calls)[0])
}

func TestStoreGetReturnsFirstLine(t *testing.T) {
	t.Parallel()

	store, calls := recordingStore("token-1\r\nuser: alice\n", "", nil)

	value, err := store.Get(context.Background(), ports.SessionTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "token-1", value)
	assert.Equal(t, []string{"show", ports.SessionTokenKey}, (*calls)[0].args)
}

func TestStoreGetMissingEntry(t *testing.T) {
	t.Parallel()

	store, _ := recordingStore("", "Error: chirp/session/token is not in the password store.", errors.New("exit status 1"))

	_, err := store.Get(context.Background(), ports.SessionTokenKey)
	assert.ErrorIs(t, err, ports.ErrSecretNotFound)
}

func TestStoreDeleteIgnoresMissingEntry(t *testing.T) {
	t.Parallel()

	store, calls := recordingStore("", "Error: chirp/session/token is not in the password store.", errors.New("exit status 1"))

	require.NoError(t, store.Delete(context.Background(), ports.SessionTokenKey))
	assert.Equal(t, []string{"rm", "--force", ports.SessionTokenKey}, (*calls)[0].args)
}

func TestStoreWrapsCommandFailure(t *testing.T) {
	t.Parallel()

	store, _ := recordingStore("", "gpg: decryption failed", errors.New("exit status 2"))

	_, err := store.Get(context.Background(), ports.SessionTokenKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrSecretNotFound)
	assert.ErrorContains(t, err, "pass show")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}
