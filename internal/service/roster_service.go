package service

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/Sayed24/Employee-Management-System/internal/domain"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
)

// RosterService owns the in-memory employee collection. Every mutation is
// followed synchronously by a full persist of the collection, so the stored
// copy never lags behind what callers observe. Order is insertion order with
// newest records first.
type RosterService struct {
	repo domain.RosterRepository

	mu      sync.Mutex
	records []domain.Employee
}

// NewRosterService creates a new RosterService instance.
func NewRosterService(repo domain.RosterRepository) *RosterService {
	return &RosterService{repo: repo}
}

// Load reads the persisted collection. An absent store is seeded with the
// fixed sample records; a present-but-malformed store yields an empty
// collection (already logged by the repository).
func (s *RosterService) Load(ctx context.Context) error {
	records, present, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !present {
		s.records = domain.SeedEmployees()
		logger.InfoLog(ctx, "No stored roster found, seeding %d sample employees", len(s.records))
		return s.repo.Save(ctx, s.records)
	}
	s.records = records
	return nil
}

// All returns a copy of the full collection in its current order.
func (s *RosterService) All() []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Count returns the number of records in the collection.
func (s *RosterService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Add assigns a fresh identifier, prepends the record and persists.
func (s *RosterService) Add(ctx context.Context, fields domain.EmployeeFields) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.Employee{ID: s.newID(nil)}
	fields.Apply(&e)

	s.records = append([]domain.Employee{e}, s.records...)
	if err := s.repo.Save(ctx, s.records); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

// Update replaces the record matching id in place, preserving its position.
// Returns false without touching the collection when id is unknown.
func (s *RosterService) Update(ctx context.Context, id string, fields domain.EmployeeFields) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			fields.Apply(&s.records[i])
			return true, s.repo.Save(ctx, s.records)
		}
	}
	return false, nil
}

// Delete removes the record matching id and persists. Returns false when id
// is unknown; deleting nothing is a no-op, not an error.
func (s *RosterService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, s.repo.Save(ctx, s.records)
		}
	}
	return false, nil
}

// ImportBatch prepends the incoming records (in input order) to the
// collection and persists. Incoming identifiers that are empty or collide
// with an existing record, or with one assigned earlier in the same batch,
// are regenerated until unique. Missing optional fields stay empty strings.
// Returns the number of records imported.
func (s *RosterService) ImportBatch(ctx context.Context, incoming []domain.Employee) (int, error) {
	if len(incoming) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]struct{}, len(s.records)+len(incoming))
	for _, e := range s.records {
		taken[e.ID] = struct{}{}
	}

	batch := make([]domain.Employee, len(incoming))
	for i, e := range incoming {
		if _, clash := taken[e.ID]; e.ID == "" || clash {
			e.ID = s.newID(taken)
		}
		taken[e.ID] = struct{}{}
		batch[i] = e
	}

	s.records = append(batch, s.records...)
	if err := s.repo.Save(ctx, s.records); err != nil {
		return 0, err
	}
	logger.InfoLog(ctx, "Imported %d employees, collection size is now %d", len(batch), len(s.records))
	return len(batch), nil
}

// ExportAll returns the full collection independent of any filter or page
// state. Same as All; named for the export intent.
func (s *RosterService) ExportAll() []domain.Employee {
	return s.All()
}

// ClearAll wipes the collection and the persistent store. This is the only
// operation that destroys data.
func (s *RosterService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return s.repo.Clear(ctx)
}

func (s *RosterService) snapshot() []domain.Employee {
	out := make([]domain.Employee, len(s.records))
	copy(out, s.records)
	return out
}

// newID generates a time-based identifier, regenerating on collision with the
// current collection and with extra, the batch-local set of already assigned
// identifiers (may be nil).
func (s *RosterService) newID(extra map[string]struct{}) string {
	for {
		id := strconv.FormatInt(time.Now().UnixNano(), 36) + strconv.FormatInt(int64(rand.Intn(1296)), 36)
		if _, ok := extra[id]; ok {
			continue
		}
		if s.hasID(id) {
			continue
		}
		return id
	}
}

func (s *RosterService) hasID(id string) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			return true
		}
	}
	return false
}
