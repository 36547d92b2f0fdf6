// Package seed writes default reference rows (departments and categories).
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Repo provides seeding backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new seed repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts rows missing by name. Existing rows are left alone unless
// syncDescription is set, in which case a differing description is
// overwritten. The whole pass is one batch.
func (r *Repo) Upsert(ctx context.Context, table domain.SeedTable, rows []domain.SeedRow, syncDescription bool) (domain.SeedCount, error) {
	var count domain.SeedCount
	if len(rows) == 0 {
		return count, nil
	}

	query, err := upsertQuery(table, syncDescription)
	if err != nil {
		return count, err
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, row.Name, row.Description)
	}

	results := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer results.Close()

	for _, row := range rows {
		var inserted bool
		err := results.QueryRow().Scan(&inserted)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			count.Skipped++
		case err != nil:
			return count, fmt.Errorf("seed %s %q: %w", table, row.Name, postgres.MapError(err, string(table), 0))
		case inserted:
			count.Inserted++
		default:
			count.Updated++
		}
	}
	return count, nil
}

// upsertQuery returns the statement for table. RETURNING yields no row when
// the conflict branch did nothing; xmax = 0 tells an insert from an update.
func upsertQuery(table domain.SeedTable, syncDescription bool) (string, error) {
	switch table {
	case domain.SeedDepartments, domain.SeedFinanceCategories, domain.SeedItemCategories:
	default:
		return "", fmt.Errorf("seed: unknown table %q", table)
	}

	onConflict := "DO NOTHING"
	if syncDescription {
		onConflict = fmt.Sprintf(
			"DO UPDATE SET description = EXCLUDED.description WHERE %s.description IS DISTINCT FROM EXCLUDED.description",
			table)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (name, description) VALUES ($1, $2) ON CONFLICT (name) %s RETURNING (xmax = 0)",
		table, onConflict), nil
}
