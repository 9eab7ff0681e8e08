// Package postgres implements the profile repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/database"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/profile"
)

type repository struct {
	db *sql.DB
}

// NewRepository creates a PostgreSQL profile repository
func NewRepository(db *sql.DB) profile.Repository {
	return &repository{db: db}
}

const profileColumns = `
	id, title, description, slides, active,
	time_schedules, daily_schedule, daily_start_time, daily_end_time,
	created_at
`

func (r *repository) Create(ctx context.Context, p *types.Profile) error {
	const op = "ProfileRepository.Create"

	slides, windows, err := marshalProfile(p)
	if err != nil {
		return database.MapError(err, op)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		p.ID, p.Title, p.Description, slides, p.Active,
		windows, p.DailySchedule, p.DailyStartTime, p.DailyEndTime,
		p.CreatedAt,
	)
	return database.MapError(err, op)
}

func (r *repository) Update(ctx context.Context, p *types.Profile) error {
	const op = "ProfileRepository.Update"

	slides, windows, err := marshalProfile(p)
	if err != nil {
		return database.MapError(err, op)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET
			title = $2, description = $3, slides = $4, active = $5,
			time_schedules = $6, daily_schedule = $7,
			daily_start_time = $8, daily_end_time = $9
		WHERE id = $1
	`,
		p.ID, p.Title, p.Description, slides, p.Active,
		windows, p.DailySchedule, p.DailyStartTime, p.DailyEndTime,
	)
	if err != nil {
		return database.MapError(err, op)
	}
	return checkAffected(result, op)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "ProfileRepository.Delete"

	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return database.MapError(err, op)
	}
	return checkAffected(result, op)
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	const op = "ProfileRepository.Get"

	row := r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, id)

	p, err := scanProfile(row)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	return p, nil
}

func (r *repository) List(ctx context.Context) ([]types.Profile, error) {
	const op = "ProfileRepository.List"

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	defer rows.Close()

	var profiles []types.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, database.MapError(err, op)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, op)
	}
	return profiles, nil
}

func (r *repository) Assign(ctx context.Context, a *types.ProfileAssignment) error {
	const op = "ProfileRepository.Assign"

	err := database.RunInTx(ctx, r.db, nil, func(tx *database.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE profile_assignments SET active = FALSE
			WHERE tv_name = $1 AND active
		`, a.TVName); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO profile_assignments (id, tv_name, profile_id, active, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, a.TVName, a.ProfileID, a.Active, a.CreatedAt)
		return err
	})
	return database.MapError(err, op)
}

func (r *repository) Unassign(ctx context.Context, id uuid.UUID) error {
	const op = "ProfileRepository.Unassign"

	result, err := r.db.ExecContext(ctx, `
		UPDATE profile_assignments SET active = FALSE
		WHERE id = $1 AND active
	`, id)
	if err != nil {
		return database.MapError(err, op)
	}
	return checkAffected(result, op)
}

func (r *repository) AssignmentForTV(ctx context.Context, tvName string) (*types.ProfileAssignment, error) {
	const op = "ProfileRepository.AssignmentForTV"

	row := r.db.QueryRowContext(ctx, `
		SELECT a.id, a.tv_name, a.profile_id, a.active, a.created_at,
		       p.id, p.title, p.description, p.slides, p.active,
		       p.time_schedules, p.daily_schedule, p.daily_start_time, p.daily_end_time,
		       p.created_at
		FROM profile_assignments a
		JOIN profiles p ON p.id = a.profile_id
		WHERE a.tv_name = $1 AND a.active
	`, tvName)

	a, err := scanAssignment(row)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	return a, nil
}

func (r *repository) ListAssignments(ctx context.Context) ([]types.ProfileAssignment, error) {
	const op = "ProfileRepository.ListAssignments"

	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.tv_name, a.profile_id, a.active, a.created_at,
		       p.id, p.title, p.description, p.slides, p.active,
		       p.time_schedules, p.daily_schedule, p.daily_start_time, p.daily_end_time,
		       p.created_at
		FROM profile_assignments a
		JOIN profiles p ON p.id = a.profile_id
		WHERE a.active
		ORDER BY a.tv_name
	`)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	defer rows.Close()

	var assignments []types.ProfileAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, database.MapError(err, op)
		}
		assignments = append(assignments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, op)
	}
	return assignments, nil
}

func marshalProfile(p *types.Profile) (slides, windows []byte, err error) {
	ss := p.Slides
	if ss == nil {
		ss = []types.Slide{}
	}
	if slides, err = json.Marshal(ss); err != nil {
		return nil, nil, fmt.Errorf("marshal slides: %w", err)
	}
	ws := p.TimeSchedules
	if ws == nil {
		ws = []types.TimeWindow{}
	}
	if windows, err = json.Marshal(ws); err != nil {
		return nil, nil, fmt.Errorf("marshal time windows: %w", err)
	}
	return slides, windows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfileFields(dst *types.Profile, slides, windows []byte) error {
	if err := json.Unmarshal(slides, &dst.Slides); err != nil {
		return fmt.Errorf("unmarshal slides: %w", err)
	}
	if err := json.Unmarshal(windows, &dst.TimeSchedules); err != nil {
		return fmt.Errorf("unmarshal time windows: %w", err)
	}
	if len(dst.TimeSchedules) == 0 {
		dst.TimeSchedules = nil
	}
	return nil
}

func scanProfile(row rowScanner) (*types.Profile, error) {
	var (
		p       types.Profile
		slides  []byte
		windows []byte
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &slides, &p.Active,
		&windows, &p.DailySchedule, &p.DailyStartTime, &p.DailyEndTime,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanProfileFields(&p, slides, windows); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanAssignment(row rowScanner) (*types.ProfileAssignment, error) {
	var (
		a       types.ProfileAssignment
		p       types.Profile
		slides  []byte
		windows []byte
	)

	err := row.Scan(
		&a.ID, &a.TVName, &a.ProfileID, &a.Active, &a.CreatedAt,
		&p.ID, &p.Title, &p.Description, &slides, &p.Active,
		&windows, &p.DailySchedule, &p.DailyStartTime, &p.DailyEndTime,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanProfileFields(&p, slides, windows); err != nil {
		return nil, err
	}
	a.Profile = &p
	return &a, nil
}

func checkAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return database.MapError(err, op)
	}
	if rows == 0 {
		return database.MapError(sql.ErrNoRows, op)
	}
	return nil
}
