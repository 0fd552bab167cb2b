package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chirp/internal/domain"
)

func newTestRepository(t *testing.T, path string) *DraftRepository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(DraftsPathKey, path)
	repo, err := NewDraftRepository(cfg)
	require.NoError(t, err)

	return repo
}

func TestDraftRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "drafts.toml"))
	parent := domain.PostID(12)
	editOf := domain.PostID(40)
	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	reply := domain.Draft{ID: "d-1", Text: "line one\nline two", ParentID: &parent, LastError: "server down", CreatedAt: createdAt}
	edit := domain.Draft{ID: "d-2", Text: "fixed typo", EditOf: &editOf, CreatedAt: createdAt.Add(time.Minute)}

	require.NoError(t, repo.Save(context.Background(), reply))
	require.NoError(t, repo.Save(context.Background(), edit))

	got, err := repo.GetByID(context.Background(), "d-1")
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	drafts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Draft{reply, edit}, drafts)
}

func TestDraftRepositorySaveReplacesExisting(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "drafts.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Draft{ID: "d-1", Text: "first"}))
	require.NoError(t, repo.Save(context.Background(), domain.Draft{ID: "d-1", Text: "first", LastError: "timeout"}))

	drafts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "timeout", drafts[0].LastError)
}

func TestDraftRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "drafts.toml"))

	drafts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drafts)

	_, err = repo.GetByID(context.Background(), "d-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	err = repo.Delete(context.Background(), "d-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "drafts.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.Draft{ID: "d-1", Text: "a"}))
	require.NoError(t, repo.Save(context.Background(), domain.Draft{ID: "d-2", Text: "b"}))

	require.NoError(t, repo.Delete(context.Background(), "d-1"))

	drafts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.DraftID("d-2"), drafts[0].ID)
}

func TestDraftRepositoryWritesVersionedPrivateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "drafts.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.Draft{ID: "d-1", Text: "hello"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(draftsFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestDraftRepositoryRejectsMalformedAndFutureFiles(t *testing.T) {
	t.Parallel()

	malformed := filepath.Join(t.TempDir(), "drafts.toml")
	require.NoError(t, os.WriteFile(malformed, []byte("drafts = ["), 0o600))
	_, err := newTestRepository(t, malformed).List(context.Background())
	assert.ErrorContains(t, err, "decode drafts file")

	future := filepath.Join(t.TempDir(), "drafts.toml")
	require.NoError(t, os.WriteFile(future, []byte("version = 7\ndrafts = []\n"), 0o600))
	_, err = newTestRepository(t, future).List(context.Background())
	assert.ErrorContains(t, err, "unsupported drafts schema version")
}

func TestDraftRepositoryCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "drafts.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, domain.Draft{ID: "d-1"}), context.Canceled)
}

func TestDraftRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "drafts.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const writes = 50
	start := make(chan struct{})
	errCh := make(chan error, writes*2)
	var wg sync.WaitGroup

	for prefix, repo := range map[string]*DraftRepository{"a": repoA, "b": repoB} {
		wg.Add(1)
		go func(prefix string, repo *DraftRepository) {
			defer wg.Done()
			<-start
			for i := 0; i < writes; i++ {
				errCh <- repo.Save(context.Background(), domain.Draft{ID: domain.DraftID(prefix + "-" + strconv.Itoa(i)), Text: "x"})
			}
		}(prefix, repo)
	}

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	drafts, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, drafts, writes*2)
}

func TestDefaultDraftsPathHonoursXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := DefaultDraftsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chirp", "drafts.toml"), path)
}
