package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type recordRepository struct {
	db *database.DB
}

// Create implements attendance.RecordRepository.
func (r *recordRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_records (id, staff_id, kind, start_time, end_time, status, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.StaffID,
		record.Kind,
		record.StartTime,
		record.EndTime,
		record.Status,
		record.Memo,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.staff_id, r.kind, r.start_time, r.end_time, r.status, r.memo,
			   r.created_at, r.updated_at,
			   s.name AS staff_name
		FROM attendance_records r
		LEFT JOIN staff s ON s.id = r.staff_id
		WHERE r.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.StaffID, &rec.Kind, &rec.StartTime, &rec.EndTime, &rec.Status, &rec.Memo,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.StaffName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// Update implements attendance.RecordRepository.
func (r *recordRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET start_time = $2, end_time = $3, status = $4, memo = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.StartTime,
		record.EndTime,
		record.Status,
		record.Memo,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// ListByStaff implements attendance.RecordRepository.
func (r *recordRepository) ListByStaff(ctx context.Context, staffID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.staff_id, r.kind, r.start_time, r.end_time, r.status, r.memo,
			   r.created_at, r.updated_at,
			   s.name AS staff_name
		FROM attendance_records r
		LEFT JOIN staff s ON s.id = r.staff_id
		WHERE r.staff_id = $1
		ORDER BY r.start_time ASC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by staff: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByRange implements attendance.RecordRepository.
func (r *recordRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.staff_id, r.kind, r.start_time, r.end_time, r.status, r.memo,
			   r.created_at, r.updated_at,
			   s.name AS staff_name
		FROM attendance_records r
		LEFT JOIN staff s ON s.id = r.staff_id
		WHERE r.start_time < $2
		  AND r.end_time > $1
		ORDER BY r.start_time ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by range: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var result []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.StaffID, &rec.Kind, &rec.StartTime, &rec.EndTime, &rec.Status, &rec.Memo,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.StaffName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance record rows: %w", err)
	}

	return result, nil
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepository{db: db}
}
