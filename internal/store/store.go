// Package store keeps finished projection tables addressable by run ID so
// clients can fetch a table after the simulate call returned.
package store

import (
	"context"
	"errors"

	"macro-stress/internal/simulate"
)

// ErrNotFound is returned for unknown or expired run IDs.
var ErrNotFound = errors.New("run not found")

type RunStore interface {
	Save(ctx context.Context, id string, t *simulate.Table) error
	Load(ctx context.Context, id string) (*simulate.Table, error)
}
