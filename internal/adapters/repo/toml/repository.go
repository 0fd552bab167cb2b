package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/chirp/internal/domain"
	"github.com/bnema/chirp/internal/ports"
)

const (
	DraftsPathKey = "drafts.path"

	draftsFileMode  = 0o600
	draftsDirMode   = 0o700
	tempFilePattern = ".drafts-*.toml.tmp"
)

// DraftRepository persists unsent posts in a single TOML file.
type DraftRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLocks      = map[string]*sync.RWMutex{}
)

var _ ports.DraftRepository = (*DraftRepository)(nil)

// DefaultDraftsPath is $XDG_DATA_HOME/chirp/drafts.toml, or the ~/.local/share equivalent.
func DefaultDraftsPath() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "chirp", "drafts.toml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "chirp", "drafts.toml"), nil
}

// NewDraftRepository opens the drafts file named by the drafts.path setting.
func NewDraftRepository(cfg *viper.Viper) (*DraftRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(DraftsPathKey)
	if path == "" {
		defaultPath, err := DefaultDraftsPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve drafts path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &DraftRepository{path: absPath, mu: lockForPath(absPath)}, nil
}

func (r *DraftRepository) Path() string {
	return r.path
}

func (r *DraftRepository) Save(ctx context.Context, draft domain.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if draft.ID == "" {
		return errors.New("draft id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	encoded := toSchema(draft)
	replaced := false
	for i := range file.Drafts {
		if file.Drafts[i].ID == encoded.ID {
			file.Drafts[i] = encoded
			replaced = true
			break
		}
	}
	if !replaced {
		file.Drafts = append(file.Drafts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(file)
}

func (r *DraftRepository) GetByID(ctx context.Context, id domain.DraftID) (domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return domain.Draft{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.read()
	if err != nil {
		return domain.Draft{}, err
	}

	for _, entry := range file.Drafts {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Draft{}, fmt.Errorf("%w: %s", domain.ErrDraftNotFound, id)
}

func (r *DraftRepository) List(ctx context.Context) ([]domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}

	drafts := make([]domain.Draft, 0, len(file.Drafts))
	for _, entry := range file.Drafts {
		drafts = append(drafts, fromSchema(entry))
	}

	return drafts, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id domain.DraftID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	kept := file.Drafts[:0]
	for _, entry := range file.Drafts {
		if entry.ID != string(id) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Drafts) {
		return fmt.Errorf("%w: %s", domain.ErrDraftNotFound, id)
	}
	file.Drafts = kept

	return r.write(file)
}

func (r *DraftRepository) read() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileSchema{Version: currentSchemaVersion}, nil
	}
	if err != nil {
		return fileSchema{}, fmt.Errorf("read drafts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode drafts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *DraftRepository) write(file fileSchema) error {
	file.applyDefaults()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, draftsDirMode); err != nil {
		return fmt.Errorf("create drafts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode drafts file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp drafts file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(draftsFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp drafts file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp drafts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp drafts file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace drafts file: %w", err)
	}
	committed = true

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLocks[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLocks[path] = mu
	return mu
}

func toSchema(draft domain.Draft) draftSchema {
	encoded := draftSchema{
		ID:        string(draft.ID),
		Text:      draft.Text,
		LastError: draft.LastError,
	}
	if draft.ParentID != nil {
		encoded.ParentID = int64(*draft.ParentID)
	}
	if draft.EditOf != nil {
		encoded.EditOf = int64(*draft.EditOf)
	}
	if !draft.CreatedAt.IsZero() {
		encoded.CreatedAt = draft.CreatedAt.UTC().Format(time.RFC3339)
	}

	return encoded
}

func fromSchema(entry draftSchema) domain.Draft {
	draft := domain.Draft{
		ID:        domain.DraftID(entry.ID),
		Text:      entry.Text,
		LastError: entry.LastError,
	}
	if entry.ParentID > 0 {
		parent := domain.PostID(entry.ParentID)
		draft.ParentID = &parent
	}
	if entry.EditOf > 0 {
		editOf := domain.PostID(entry.EditOf)
		draft.EditOf = &editOf
	}
	if entry.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, entry.CreatedAt); err == nil {
			draft.CreatedAt = createdAt
		}
	}

	return draft
}
