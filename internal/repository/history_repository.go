package repository

import (
	"context"
	"database/sql"
	"time"

	"kisanbandhu/console/internal/model"
)

// HistoryRepository stores the notification send history. The history is
// local to this console instance and never synced to the platform backend.
type HistoryRepository interface {
	Append(ctx context.Context, rec model.NotificationRecord) error
	// List returns the history most-recent-first. There is no size cap.
	List(ctx context.Context) ([]model.NotificationRecord, error)
	Clear(ctx context.Context) error
}

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new notification history repository.
func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Append(ctx context.Context, rec model.NotificationRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_history
			(id, title, message, language_code, success_count, failure_count, total_count, result, error_message, sent_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Title,
		rec.Message,
		rec.LanguageCode,
		rec.SuccessCount,
		rec.FailureCount,
		rec.TotalCount,
		rec.Result,
		rec.ErrorMessage,
		rec.SentAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *historyRepository) List(ctx context.Context) ([]model.NotificationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, message, language_code, success_count, failure_count, total_count, result, error_message, sent_at
		FROM notification_history
		ORDER BY sent_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.NotificationRecord
	for rows.Next() {
		var rec model.NotificationRecord
		var sentAt string
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Message,
			&rec.LanguageCode,
			&rec.SuccessCount,
			&rec.FailureCount,
			&rec.TotalCount,
			&rec.Result,
			&rec.ErrorMessage,
			&sentAt,
		); err != nil {
			return nil, err
		}
		t, _ := time.Parse(time.RFC3339Nano, sentAt)
		rec.SentAt = t
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *historyRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notification_history`)
	return err
}
