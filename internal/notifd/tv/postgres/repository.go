// Package postgres implements the TV registry repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/database"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/tv"
)

type repository struct {
	db *sql.DB
}

// NewRepository creates a PostgreSQL TV registry repository
func NewRepository(db *sql.DB) tv.Repository {
	return &repository{db: db}
}

const tvColumns = `
	id, name, display_name, description, location, active, created_at, updated_at
`

func (r *repository) Create(ctx context.Context, t *types.TV) error {
	const op = "TVRepository.Create"

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tvs (`+tvColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.Name, t.DisplayName, t.Description, t.Location, t.Active, t.CreatedAt, t.UpdatedAt)
	return database.MapError(err, op)
}

func (r *repository) Update(ctx context.Context, t *types.TV) error {
	const op = "TVRepository.Update"

	result, err := r.db.ExecContext(ctx, `
		UPDATE tvs SET
			name = $2, display_name = $3, description = $4,
			location = $5, active = $6, updated_at = $7
		WHERE id = $1
	`, t.ID, t.Name, t.DisplayName, t.Description, t.Location, t.Active, t.UpdatedAt)
	if err != nil {
		return database.MapError(err, op)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, op)
	}
	if rows == 0 {
		return database.MapError(sql.ErrNoRows, op)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "TVRepository.Delete"

	result, err := r.db.ExecContext(ctx, `DELETE FROM tvs WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, op)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, op)
	}
	if rows == 0 {
		return database.MapError(sql.ErrNoRows, op)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*types.TV, error) {
	const op = "TVRepository.Get"

	row := r.db.QueryRowContext(ctx, `
		SELECT `+tvColumns+` FROM tvs WHERE id = $1
	`, id)
	return scanTV(row, op)
}

func (r *repository) GetByName(ctx context.Context, name string) (*types.TV, error) {
	const op = "TVRepository.GetByName"

	row := r.db.QueryRowContext(ctx, `
		SELECT `+tvColumns+` FROM tvs WHERE name = $1
	`, name)
	return scanTV(row, op)
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]types.TV, error) {
	const op = "TVRepository.List"

	query := `SELECT ` + tvColumns + ` FROM tvs ORDER BY name`
	if activeOnly {
		query = `SELECT ` + tvColumns + ` FROM tvs WHERE active ORDER BY name`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	defer rows.Close()

	var tvs []types.TV
	for rows.Next() {
		var t types.TV
		if err := rows.Scan(
			&t.ID, &t.Name, &t.DisplayName, &t.Description,
			&t.Location, &t.Active, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, database.MapError(err, op)
		}
		tvs = append(tvs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, op)
	}
	return tvs, nil
}

func scanTV(row *sql.Row, op string) (*types.TV, error) {
	var t types.TV
	err := row.Scan(
		&t.ID, &t.Name, &t.DisplayName, &t.Description,
		&t.Location, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	return &t, nil
}
