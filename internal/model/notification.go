package model

import "time"

// Notification send results.
const (
	NotificationResultSent   = "sent"
	NotificationResultFailed = "failed"
)

// NotificationRecord is one entry in the locally persisted send history.
// The history is console-local only; it is never synced to any server.
type NotificationRecord struct {
	ID           int64     `json:"id,string"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	LanguageCode string    `json:"language_code"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	TotalCount   int       `json:"total_count"`
	Result       string    `json:"result"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	SentAt       time.Time `json:"sent_at"`
}
