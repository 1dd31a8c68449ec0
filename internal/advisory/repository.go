package advisory

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetAllCropRecords fetches the full reference dataset. The table is small and
// read-only, so there is no filtering or pagination. ORDER BY id keeps the
// classifier's tie-break deterministic across calls.
func (r *PostgresRepository) GetAllCropRecords(ctx context.Context) ([]CropRecord, error) {
	query := `
		SELECT label, temperature, humidity, ph, rainfall, nitrogen, phosphorus, potassium
		FROM crop_records
		ORDER BY id
	`

	var records []CropRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to fetch crop records: %w", err)
	}

	return records, nil
}
