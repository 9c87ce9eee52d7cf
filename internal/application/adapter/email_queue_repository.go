// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/fundflow/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the outgoing email queue.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs due for delivery, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// PurgeSentBefore removes sent jobs processed before the cutoff and
	// returns how many rows were removed.
	PurgeSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
