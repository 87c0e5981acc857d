package ports

import (
	"context"
	"time"
)

// ReconcileService hosts the two daily batch jobs. Both tolerate per-item
// failures: one bad task or one failed call never aborts the run.
type ReconcileService interface {
	// RefreshPriorities recomputes the due-date priority of every live
	// task as of now and persists the ones that changed.
	RefreshPriorities(ctx context.Context, now time.Time) error
	// SweepOverdue calls the owner of every overdue, not-done task, at
	// most once per phone number per run.
	SweepOverdue(ctx context.Context, now time.Time) error
}
