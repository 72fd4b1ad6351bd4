package predictions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/types"
)

// ErrNoSnapshot is returned by Load when no state has been saved yet. It is
// the expected first-run condition, not a failure.
var ErrNoSnapshot = errors.New("no saved predictions")

// FileStore persists the run state as a single JSON document.
type FileStore struct {
	path string
}

var _ interfaces.PredictionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*types.State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var st types.State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if st.Predictions == nil {
		st.Predictions = types.SnapshotSet{}
	}
	return &st, nil
}

// Save replaces the whole state. The write goes through a temp file and a
// rename so a crashed run never leaves a half-written document behind.
func (s *FileStore) Save(ctx context.Context, st *types.State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
