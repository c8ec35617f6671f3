package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/driveline/internal/domain"
	"github.com/google/uuid"
)

// MemoryVehicleRepo is an in-memory VehicleRepo for tests and demos.
type MemoryVehicleRepo struct {
	mu       sync.RWMutex
	vehicles map[string]domain.CandidateVehicle
}

func NewMemoryVehicleRepo() *MemoryVehicleRepo {
	return &MemoryVehicleRepo{vehicles: make(map[string]domain.CandidateVehicle)}
}

func (r *MemoryVehicleRepo) Put(ctx context.Context, v domain.CandidateVehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[v.ID] = v
	return nil
}

func (r *MemoryVehicleRepo) GetByID(ctx context.Context, id string) (domain.CandidateVehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[id]
	if !ok {
		return domain.CandidateVehicle{}, fmt.Errorf("vehicle %s: %w", id, ErrNotFound)
	}
	return v, nil
}

func (r *MemoryVehicleRepo) List(ctx context.Context) ([]domain.CandidateVehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.CandidateVehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryVehicleRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.CandidateVehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CandidateVehicle
	for _, id := range ids {
		if v, ok := r.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// MemoryLeadRepo is an in-memory LeadRepo for tests.
type MemoryLeadRepo struct {
	mu    sync.Mutex
	leads []domain.DealerLead
}

func NewMemoryLeadRepo() *MemoryLeadRepo {
	return &MemoryLeadRepo{}
}

func (r *MemoryLeadRepo) Create(ctx context.Context, lead domain.DealerLead) error {
	if err := lead.Validate(); err != nil {
		return err
	}
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

func (r *MemoryLeadRepo) List(ctx context.Context) ([]domain.DealerLead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DealerLead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

var _ VehicleRepo = (*MemoryVehicleRepo)(nil)
var _ LeadRepo = (*MemoryLeadRepo)(nil)
