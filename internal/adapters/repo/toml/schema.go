package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Drafts  []draftSchema `toml:"drafts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported drafts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type draftSchema struct {
	ID        string `toml:"id"`
	Text      string `toml:"text,multiline"`
	ParentID  int64  `toml:"parent_id,omitempty"`
	EditOf    int64  `toml:"edit_of,omitempty"`
	LastError string `toml:"last_error,omitempty"`
	CreatedAt string `toml:"created_at"`
}
