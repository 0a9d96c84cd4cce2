package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/repository"
	"kisanbandhu/console/internal/repository/testutil"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/snowflake"
	"kisanbandhu/console/internal/upstream"
	"kisanbandhu/console/internal/upstream/mock"
)

func newNotificationService(t *testing.T, upstreamClient upstream.Client) (service.NotificationService, repository.HistoryRepository) {
	t.Helper()
	require.NoError(t, snowflake.Init(0))
	history := repository.NewHistoryRepository(testutil.NewTestDB(t))
	return service.NewNotificationService(upstreamClient, history), history
}

func TestNotificationService_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc, history := newNotificationService(t, upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		SendNotification(ctx, "Mandi prices", "Wheat at 2400/quintal today", "hi").
		Return(upstream.SendResult{SuccessCount: 120, FailureCount: 3}, nil)

	outcome, err := svc.Send(ctx, " Mandi prices ", "Wheat at 2400/quintal today", "HI")
	require.NoError(t, err)
	require.Equal(t, 120, outcome.SuccessCount)
	require.Equal(t, 3, outcome.FailureCount)
	require.Equal(t, 123, outcome.TotalCount)

	records, err := history.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, model.NotificationResultSent, records[0].Result)
	require.Equal(t, 120, records[0].SuccessCount)
	require.Nil(t, records[0].ErrorMessage)
}

func TestNotificationService_Send_UpstreamFailureRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc, history := newNotificationService(t, upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		SendNotification(ctx, "Alert", "Frost expected tonight", "en").
		Return(upstream.SendResult{}, &upstream.Error{Status: 500, Message: "FCM unavailable"})

	_, err := svc.Send(ctx, "Alert", "Frost expected tonight", "en")
	require.Error(t, err)

	// A failed broadcast still leaves an audit record.
	records, listErr := history.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, records, 1)
	require.Equal(t, model.NotificationResultFailed, records[0].Result)
	require.NotNil(t, records[0].ErrorMessage)
	require.Contains(t, *records[0].ErrorMessage, "FCM unavailable")
}

func TestNotificationService_Send_TitleTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No mock expectation: an oversized payload must fail before any
	// network call and leave no history.
	svc, history := newNotificationService(t, mock.NewMockClient(ctrl))
	ctx := context.Background()

	_, err := svc.Send(ctx, strings.Repeat("क", 101), "Message", "hi")
	require.ErrorIs(t, err, service.ErrInvalid)

	records, listErr := history.List(ctx)
	require.NoError(t, listErr)
	require.Empty(t, records)
}

func TestNotificationService_Send_TitleAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc, _ := newNotificationService(t, upstreamMock)
	ctx := context.Background()

	// Limits count runes, not bytes; 100 Devanagari characters are fine.
	title := strings.Repeat("क", 100)
	upstreamMock.EXPECT().
		SendNotification(ctx, title, "Message", "hi").
		Return(upstream.SendResult{SuccessCount: 1}, nil)

	_, err := svc.Send(ctx, title, "Message", "hi")
	require.NoError(t, err)
}

func TestNotificationService_Send_MessageTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newNotificationService(t, mock.NewMockClient(ctrl))

	_, err := svc.Send(context.Background(), "Title", strings.Repeat("a", 201), "en")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestNotificationService_Send_UnknownLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newNotificationService(t, mock.NewMockClient(ctrl))

	_, err := svc.Send(context.Background(), "Title", "Message", "zz")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestNotificationService_ClearHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc, _ := newNotificationService(t, upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		SendNotification(ctx, "Title", "Message", "en").
		Return(upstream.SendResult{SuccessCount: 5}, nil)

	_, err := svc.Send(ctx, "Title", "Message", "en")
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx))

	records, err := svc.History(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}
