package predictions

import (
	"context"
	"errors"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/Danypoz1986/StockBot/internal/interfaces"
	"github.com/Danypoz1986/StockBot/internal/types"
)

const stateKey = "state"

// BadgerStore persists the run state in an embedded badger database. Suits
// deployments where the bot keeps its own data directory instead of a single
// JSON file.
type BadgerStore struct {
	store *badgerhold.Store
}

var _ interfaces.PredictionStore = (*BadgerStore)(nil)

type stateRecord struct {
	ID    string `badgerhold:"key"`
	State types.State
}

func OpenBadgerStore(dir string) (*BadgerStore, error) {
	options := badgerhold.DefaultOptions
	options.Dir = dir
	options.ValueDir = dir
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open badger store at %s: %w", dir, err)
	}
	return &BadgerStore{store: store}, nil
}

func (s *BadgerStore) Load(ctx context.Context) (*types.State, error) {
	var rec stateRecord
	if err := s.store.Get(stateKey, &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load state: %w", err)
	}

	st := rec.State
	if st.Predictions == nil {
		st.Predictions = types.SnapshotSet{}
	}
	return &st, nil
}

func (s *BadgerStore) Save(ctx context.Context, st *types.State) error {
	if err := s.store.Upsert(stateKey, stateRecord{ID: stateKey, State: *st}); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.store.Close()
}
