// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fundflow/backend/internal/domain/entity"
)

// ReportRepository defines the interface for persisted report snapshots.
type ReportRepository interface {
	// Create persists a report snapshot.
	Create(ctx context.Context, report *entity.Report) error

	// FindByUserID retrieves saved reports for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Report, error)

	// FindByID retrieves a saved report by its ID, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error)
}
