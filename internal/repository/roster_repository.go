package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sayed24/Employee-Management-System/internal/database"
	"github.com/Sayed24/Employee-Management-System/internal/domain"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
)

type rosterRepository struct {
	store *database.LocalStore
	key   string
}

// NewRosterRepository creates a RosterRepository that keeps the whole employee
// collection under a single key as a JSON-encoded array.
func NewRosterRepository(store *database.LocalStore, key string) domain.RosterRepository {
	return &rosterRepository{store: store, key: key}
}

func (r *rosterRepository) Load(ctx context.Context) ([]domain.Employee, bool, error) {
	raw, present, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, false, err
	}
	if !present {
		return nil, false, nil
	}

	var records []domain.Employee
	if err := json.Unmarshal(raw, &records); err != nil {
		// Malformed stored data counts as "no data": start over with an
		// empty collection and only tell the developer console about it.
		logger.WarnLog(ctx, "discarding malformed roster data under key %q: %v", r.key, err)
		return nil, true, nil
	}
	return records, true, nil
}

func (r *rosterRepository) Save(ctx context.Context, records []domain.Employee) error {
	if records == nil {
		records = []domain.Employee{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	return r.store.Set(ctx, r.key, raw)
}

func (r *rosterRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
