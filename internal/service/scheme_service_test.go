package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/service"
	"kisanbandhu/console/internal/upstream/mock"
)

func validScheme() model.Scheme {
	return model.Scheme{
		Type:          "subsidy",
		StateOrOrg:    "Maharashtra",
		StartDate:     "2026-01-01",
		EndDate:       "2026-12-31",
		Status:        model.SchemeStatusActive,
		OfficialLink:  "https://example.gov.in/scheme",
		FundingAmount: 5000,
		LanguageData: []model.SchemeTranslation{
			{
				LanguageCode: "en",
				Name:         "Drip Irrigation Subsidy",
				Description:  "Subsidy for drip irrigation equipment",
				Benefits:     []string{"50% cost covered"},
				Eligibility:  []string{"Registered farmer"},
			},
		},
	}
}

func TestSchemeService_List_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := service.NewSchemeService(upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		SchemesByLanguage(ctx, "hi").
		Return([]model.Scheme{{ID: 1, Name: "Yojana"}}, nil)

	schemes, err := svc.List(ctx, "HI")
	require.NoError(t, err)
	require.Len(t, schemes, 1)
}

func TestSchemeService_List_UnknownLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	_, err := svc.List(context.Background(), "xx")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSchemeService_Add_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := service.NewSchemeService(upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		AddScheme(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, scheme model.Scheme) error {
			require.Equal(t, "subsidy", scheme.Type)
			require.Equal(t, []string{"50% cost covered"}, scheme.LanguageData[0].Benefits)
			return nil
		})

	require.NoError(t, svc.Add(ctx, validScheme()))
}

func TestSchemeService_Add_MissingType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	scheme := validScheme()
	scheme.Type = "  "
	err := svc.Add(context.Background(), scheme)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSchemeService_Add_NoLanguageSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	scheme := validScheme()
	scheme.LanguageData = nil
	err := svc.Add(context.Background(), scheme)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSchemeService_Add_DuplicateLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A duplicated section would silently lose one of the two texts, so
	// the save is rejected before any backend call.
	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	scheme := validScheme()
	scheme.LanguageData = append(scheme.LanguageData, model.SchemeTranslation{
		LanguageCode: "EN",
		Name:         "Duplicate",
	})
	err := svc.Add(context.Background(), scheme)
	require.ErrorIs(t, err, service.ErrDuplicateLanguage)
}

func TestSchemeService_Add_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	scheme := validScheme()
	scheme.Status = "PAUSED"
	err := svc.Add(context.Background(), scheme)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSchemeService_Add_DropsBlankListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := service.NewSchemeService(upstreamMock)
	ctx := context.Background()

	scheme := validScheme()
	scheme.LanguageData[0].Benefits = []string{" 50% cost covered ", "", "  "}

	upstreamMock.EXPECT().
		AddScheme(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got model.Scheme) error {
			require.Equal(t, []string{"50% cost covered"}, got.LanguageData[0].Benefits)
			return nil
		})

	require.NoError(t, svc.Add(ctx, scheme))
}

func TestSchemeService_Update_RequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	err := svc.Update(context.Background(), validScheme())
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSchemeService_Delete_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The mock records zero expectations: an unconfirmed delete must not
	// reach the backend at all.
	svc := service.NewSchemeService(mock.NewMockClient(ctrl))

	err := svc.Delete(context.Background(), 42, false)
	require.ErrorIs(t, err, service.ErrConfirmRequired)
}

func TestSchemeService_Delete_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := service.NewSchemeService(upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().DeleteScheme(ctx, int64(42)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 42, true))
}

func TestSchemeService_UpdateTranslation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstreamMock := mock.NewMockClient(ctrl)
	svc := service.NewSchemeService(upstreamMock)
	ctx := context.Background()

	upstreamMock.EXPECT().
		UpdateSchemeTranslation(ctx, int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, tr model.SchemeTranslation) error {
			require.Equal(t, "hi", tr.LanguageCode)
			require.Equal(t, "Yojana", tr.Name)
			return nil
		})

	err := svc.UpdateTranslation(ctx, 7, model.SchemeTranslation{
		LanguageCode: "hi",
		Name:         " Yojana ",
	})
	require.NoError(t, err)
}

func TestAmount_UnmarshalFlexible(t *testing.T) {
	var s model.Scheme

	// Amounts arrive as numbers or as form strings; both must land as the
	// same value.
	require.NoError(t, json.Unmarshal([]byte(`{"type":"x","funding_amount":5000}`), &s))
	require.Equal(t, model.Amount(5000), s.FundingAmount)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"x","funding_amount":"2500.50"}`), &s))
	require.Equal(t, model.Amount(2500.50), s.FundingAmount)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"x","funding_amount":""}`), &s))
	require.Equal(t, model.Amount(0), s.FundingAmount)

	require.Error(t, json.Unmarshal([]byte(`{"type":"x","funding_amount":"lots"}`), &s))
}
