package store

import (
	"context"
	"time"

	"github.com/me/jobseq/pkg/model"
)

// Store defines the persistence layer for solved runs.
type Store interface {
	CreateRun(ctx context.Context, run *model.Run) error
	// GetRun returns nil, nil when no run has the given id.
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error)
	// DeleteRun reports whether a run was deleted.
	DeleteRun(ctx context.Context, id string) (bool, error)
	DeleteRunsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
}
