package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yusufkecer/health-tracker/internal/domain"
)

var recordColumns = []string{
	"id", "user_id", "type", "title", "description", "value", "unit", "date", "created_at", "updated_at",
}

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) Create(ctx context.Context, rec *domain.HealthRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query, args, err := sq.Insert("health_records").
		Columns(recordColumns...).
		Values(rec.ID, rec.UserID, rec.Type, rec.Title, rec.Description, rec.Value, rec.Unit, rec.Date, rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("failed to create health record: %w", err)
	}
	return rec.ID, nil
}

// ListRecords returns the newest records for a user. A non-positive limit
// returns every record.
func (r *RecordRepository) ListRecords(ctx context.Context, userID string, limit int) ([]domain.HealthRecord, error) {
	builder := sq.Select(recordColumns...).
		From("health_records").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	defer rows.Close()

	var records []domain.HealthRecord
	for rows.Next() {
		var rec domain.HealthRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Type, &rec.Title, &rec.Description, &rec.Value, &rec.Unit, &rec.Date, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan health record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
