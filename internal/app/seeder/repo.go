// Package seeder fills the reference tables with the studio's default
// departments, finance categories and item categories.
package seeder

import (
	"context"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// SeedRepo is the write contract consumed by the pipeline. Implemented by
// seed.Repo.
type SeedRepo interface {
	Upsert(ctx context.Context, table domain.SeedTable, rows []domain.SeedRow, syncDescription bool) (domain.SeedCount, error)
}
