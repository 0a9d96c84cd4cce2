package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/logger"
	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/repository"
	"kisanbandhu/console/internal/snowflake"
	"kisanbandhu/console/internal/upstream"
)

// Push payload limits. FCM truncates beyond these on most devices, so the
// console rejects oversized text before anything goes over the wire.
const (
	maxNotificationTitle   = 100
	maxNotificationMessage = 200
)

// Broadcasts go to every registered device; keep a floor between sends so
// a double-click cannot fire twice.
const notificationInterval = 3 * time.Second

// SendOutcome is what the admin sees after a broadcast.
type SendOutcome struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
	TotalCount   int `json:"total_count"`
}

// NotificationService sends push broadcasts through the platform backend
// and keeps a local send history.
type NotificationService interface {
	Send(ctx context.Context, title, message, languageCode string) (SendOutcome, error)
	History(ctx context.Context) ([]model.NotificationRecord, error)
	ClearHistory(ctx context.Context) error
}

type notificationService struct {
	upstream upstream.Client
	history  repository.HistoryRepository
	limiter  *rate.Limiter
}

// NewNotificationService creates a new notification service.
func NewNotificationService(client upstream.Client, history repository.HistoryRepository) NotificationService {
	return &notificationService{
		upstream: client,
		history:  history,
		limiter:  rate.NewLimiter(rate.Every(notificationInterval), 1),
	}
}

// Send validates the payload, forwards the broadcast and appends a history
// record for both outcomes. Validation failures never reach the network
// and leave no history.
func (s *notificationService) Send(ctx context.Context, title, message, languageCode string) (SendOutcome, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	languageCode = normalizeLanguage(languageCode)

	if title == "" {
		return SendOutcome{}, invalidf("title", "title is required")
	}
	if utf8.RuneCountInString(title) > maxNotificationTitle {
		return SendOutcome{}, invalidf("title", "title must be at most 100 characters")
	}
	if message == "" {
		return SendOutcome{}, invalidf("message", "message is required")
	}
	if utf8.RuneCountInString(message) > maxNotificationMessage {
		return SendOutcome{}, invalidf("message", "message must be at most 200 characters")
	}
	if !language.IsValid(languageCode) {
		return SendOutcome{}, invalidf("language", "unknown language code")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return SendOutcome{}, err
	}

	result, sendErr := s.upstream.SendNotification(ctx, title, message, languageCode)

	rec := model.NotificationRecord{
		ID:           snowflake.NextID(),
		Title:        title,
		Message:      message,
		LanguageCode: languageCode,
		SentAt:       time.Now().UTC(),
	}
	if sendErr != nil {
		rec.Result = model.NotificationResultFailed
		msg := sendErr.Error()
		rec.ErrorMessage = &msg
	} else {
		rec.Result = model.NotificationResultSent
		rec.SuccessCount = result.SuccessCount
		rec.FailureCount = result.FailureCount
		rec.TotalCount = result.SuccessCount + result.FailureCount
	}

	// History is best effort; a logging failure must not mask the send
	// outcome.
	if err := s.history.Append(ctx, rec); err != nil {
		logger.Error("append notification history",
			"module", "notification",
			"action", "append_history",
			"resource", "notification_history",
			"result", "failed",
			"error", err,
		)
	}

	if sendErr != nil {
		return SendOutcome{}, sendErr
	}
	return SendOutcome{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		TotalCount:   result.SuccessCount + result.FailureCount,
	}, nil
}

func (s *notificationService) History(ctx context.Context) ([]model.NotificationRecord, error) {
	return s.history.List(ctx)
}

func (s *notificationService) ClearHistory(ctx context.Context) error {
	return s.history.Clear(ctx)
}
