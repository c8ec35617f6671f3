// Package catalog stores the vehicle inventory and dealer leads. It is the
// collaborator that feeds normalized CandidateVehicles to the ranking engine;
// all field mapping and defaulting from upstream formats happens here so the
// engine's input schema stays closed.
package catalog

import (
	"context"
	"errors"

	"github.com/alexanderramin/driveline/internal/domain"
)

// ErrNotFound is returned when a vehicle or lead id does not exist.
var ErrNotFound = errors.New("not found")

// VehicleRepo provides access to the candidate vehicle inventory.
type VehicleRepo interface {
	Put(ctx context.Context, v domain.CandidateVehicle) error
	GetByID(ctx context.Context, id string) (domain.CandidateVehicle, error)
	List(ctx context.Context) ([]domain.CandidateVehicle, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.CandidateVehicle, error)
}

// LeadRepo persists dealer leads.
type LeadRepo interface {
	Create(ctx context.Context, lead domain.DealerLead) error
	List(ctx context.Context) ([]domain.DealerLead, error)
}
