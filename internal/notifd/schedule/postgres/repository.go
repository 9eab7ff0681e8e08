// Package postgres implements the schedule repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/database"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/schedule"
)

type repository struct {
	db *sql.DB
}

// NewRepository creates a PostgreSQL schedule repository
func NewRepository(db *sql.DB) schedule.Repository {
	return &repository{db: db}
}

const scheduleColumns = `
	id, title, description, content_type, content,
	image_urls, video_urls, target_tvs, active,
	time_schedules, start_time, end_time,
	daily_schedule, daily_start_time, daily_end_time,
	created_at, updated_at
`

func (r *repository) Create(ctx context.Context, s *types.ContentSchedule) error {
	const op = "ScheduleRepository.Create"

	imageURLs, videoURLs, windows, err := marshalMedia(s)
	if err != nil {
		return database.MapError(err, op)
	}

	err = database.RunInTx(ctx, r.db, nil, func(tx *database.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO content_schedules (`+scheduleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`,
			s.ID, s.Title, s.Description, string(s.ContentType), s.Content,
			imageURLs, videoURLs, pq.Array(s.TargetTVs), s.Active,
			windows, s.StartTime, s.EndTime,
			s.DailySchedule, s.DailyStartTime, s.DailyEndTime,
			s.CreatedAt, s.UpdatedAt,
		)
		return err
	})
	return database.MapError(err, op)
}

func (r *repository) Update(ctx context.Context, s *types.ContentSchedule) error {
	const op = "ScheduleRepository.Update"

	imageURLs, videoURLs, windows, err := marshalMedia(s)
	if err != nil {
		return database.MapError(err, op)
	}

	err = database.RunInTx(ctx, r.db, nil, func(tx *database.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE content_schedules SET
				title = $2, description = $3, content_type = $4, content = $5,
				image_urls = $6, video_urls = $7, target_tvs = $8, active = $9,
				time_schedules = $10, start_time = $11, end_time = $12,
				daily_schedule = $13, daily_start_time = $14, daily_end_time = $15,
				updated_at = $16
			WHERE id = $1
		`,
			s.ID, s.Title, s.Description, string(s.ContentType), s.Content,
			imageURLs, videoURLs, pq.Array(s.TargetTVs), s.Active,
			windows, s.StartTime, s.EndTime,
			s.DailySchedule, s.DailyStartTime, s.DailyEndTime,
			s.UpdatedAt,
		)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	return database.MapError(err, op)
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "ScheduleRepository.Delete"

	result, err := r.db.ExecContext(ctx, `DELETE FROM content_schedules WHERE id = $1`, id)
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

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*types.ContentSchedule, error) {
	const op = "ScheduleRepository.Get"

	row := r.db.QueryRowContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM content_schedules
		WHERE id = $1
	`, id)

	s, err := scanSchedule(row)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	return s, nil
}

func (r *repository) List(ctx context.Context) ([]types.ContentSchedule, error) {
	const op = "ScheduleRepository.List"

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM content_schedules
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	defer rows.Close()

	return collectSchedules(rows, op)
}

func (r *repository) ListByTarget(ctx context.Context, tvName string) ([]types.ContentSchedule, error) {
	const op = "ScheduleRepository.ListByTarget"

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM content_schedules
		WHERE $1 = ANY(target_tvs)
		ORDER BY created_at DESC
	`, tvName)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	defer rows.Close()

	return collectSchedules(rows, op)
}

func marshalMedia(s *types.ContentSchedule) (imageURLs, videoURLs, windows []byte, err error) {
	if imageURLs, err = json.Marshal(orEmpty(s.ImageURLs)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal image urls: %w", err)
	}
	if videoURLs, err = json.Marshal(orEmpty(s.VideoURLs)); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal video urls: %w", err)
	}
	ws := s.TimeSchedules
	if ws == nil {
		ws = []types.TimeWindow{}
	}
	if windows, err = json.Marshal(ws); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal time windows: %w", err)
	}
	return imageURLs, videoURLs, windows, nil
}

func orEmpty(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*types.ContentSchedule, error) {
	var (
		s           types.ContentSchedule
		contentType string
		imageURLs   []byte
		videoURLs   []byte
		windows     []byte
	)

	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &contentType, &s.Content,
		&imageURLs, &videoURLs, pq.Array(&s.TargetTVs), &s.Active,
		&windows, &s.StartTime, &s.EndTime,
		&s.DailySchedule, &s.DailyStartTime, &s.DailyEndTime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.ContentType = types.ContentType(contentType)
	if err := json.Unmarshal(imageURLs, &s.ImageURLs); err != nil {
		return nil, fmt.Errorf("unmarshal image urls: %w", err)
	}
	if err := json.Unmarshal(videoURLs, &s.VideoURLs); err != nil {
		return nil, fmt.Errorf("unmarshal video urls: %w", err)
	}
	if err := json.Unmarshal(windows, &s.TimeSchedules); err != nil {
		return nil, fmt.Errorf("unmarshal time windows: %w", err)
	}
	if len(s.TimeSchedules) == 0 {
		s.TimeSchedules = nil
	}
	if len(s.ImageURLs) == 0 {
		s.ImageURLs = nil
	}
	if len(s.VideoURLs) == 0 {
		s.VideoURLs = nil
	}
	return &s, nil
}

func collectSchedules(rows *sql.Rows, op string) ([]types.ContentSchedule, error) {
	var schedules []types.ContentSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, database.MapError(err, op)
		}
		schedules = append(schedules, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, database.MapError(err, op)
	}
	return schedules, nil
}
