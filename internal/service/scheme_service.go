package service

import (
	"context"
	"strings"

	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/upstream"
)

// SchemeService manages government and private support schemes. All
// authoritative state lives on the platform backend; this layer owns
// validation and the delete confirmation step.
type SchemeService interface {
	// List returns schemes with the given language's text flattened in.
	List(ctx context.Context, languageCode string) ([]model.Scheme, error)
	Add(ctx context.Context, scheme model.Scheme) error
	Update(ctx context.Context, scheme model.Scheme) error
	// Delete removes a scheme. Without confirm it returns
	// ErrConfirmRequired and issues no backend call.
	Delete(ctx context.Context, id int64, confirm bool) error
	Translations(ctx context.Context, schemeID int64) ([]model.SchemeTranslation, error)
	UpdateTranslation(ctx context.Context, schemeID int64, tr model.SchemeTranslation) error
}

type schemeService struct {
	upstream upstream.Client
}

// NewSchemeService creates a new scheme service.
func NewSchemeService(client upstream.Client) SchemeService {
	return &schemeService{upstream: client}
}

func (s *schemeService) List(ctx context.Context, languageCode string) ([]model.Scheme, error) {
	languageCode = normalizeLanguage(languageCode)
	if !language.IsValid(languageCode) {
		return nil, invalidf("language_code", "unknown language code")
	}
	return s.upstream.SchemesByLanguage(ctx, languageCode)
}

func (s *schemeService) Add(ctx context.Context, scheme model.Scheme) error {
	cleaned, err := validateScheme(scheme)
	if err != nil {
		return err
	}
	return s.upstream.AddScheme(ctx, cleaned)
}

func (s *schemeService) Update(ctx context.Context, scheme model.Scheme) error {
	if scheme.ID == 0 {
		return invalidf("id", "scheme id is required")
	}
	cleaned, err := validateScheme(scheme)
	if err != nil {
		return err
	}
	return s.upstream.UpdateScheme(ctx, cleaned)
}

func (s *schemeService) Delete(ctx context.Context, id int64, confirm bool) error {
	if id == 0 {
		return invalidf("id", "scheme id is required")
	}
	if !confirm {
		return ErrConfirmRequired
	}
	return s.upstream.DeleteScheme(ctx, id)
}

func (s *schemeService) Translations(ctx context.Context, schemeID int64) ([]model.SchemeTranslation, error) {
	if schemeID == 0 {
		return nil, invalidf("scheme_id", "scheme id is required")
	}
	return s.upstream.SchemeTranslations(ctx, schemeID)
}

func (s *schemeService) UpdateTranslation(ctx context.Context, schemeID int64, tr model.SchemeTranslation) error {
	if schemeID == 0 {
		return invalidf("scheme_id", "scheme id is required")
	}
	cleaned, err := validateTranslation(tr)
	if err != nil {
		return err
	}
	return s.upstream.UpdateSchemeTranslation(ctx, schemeID, cleaned)
}

// validateScheme checks the shared scalar fields and every language
// section, returning a copy with whitespace trimmed and blank list items
// dropped.
func validateScheme(scheme model.Scheme) (model.Scheme, error) {
	scheme.Type = strings.TrimSpace(scheme.Type)
	scheme.StateOrOrg = strings.TrimSpace(scheme.StateOrOrg)
	scheme.StartDate = strings.TrimSpace(scheme.StartDate)
	scheme.EndDate = strings.TrimSpace(scheme.EndDate)
	scheme.Status = strings.ToUpper(strings.TrimSpace(scheme.Status))
	scheme.OfficialLink = strings.TrimSpace(scheme.OfficialLink)

	if scheme.Type == "" {
		return scheme, invalidf("type", "scheme type is required")
	}
	if scheme.StateOrOrg == "" {
		return scheme, invalidf("state_or_org", "state or organization is required")
	}
	if scheme.Status == "" {
		scheme.Status = model.SchemeStatusActive
	}
	if scheme.Status != model.SchemeStatusActive && scheme.Status != model.SchemeStatusExpired {
		return scheme, invalidf("status", "status must be ACTIVE or EXPIRED")
	}
	if scheme.FundingAmount < 0 {
		return scheme, invalidf("funding_amount", "funding amount cannot be negative")
	}

	if len(scheme.LanguageData) == 0 {
		return scheme, invalidf("language_data", "at least one language section is required")
	}
	seen := make(map[string]bool, len(scheme.LanguageData))
	for i, tr := range scheme.LanguageData {
		cleaned, err := validateTranslation(tr)
		if err != nil {
			return scheme, err
		}
		if seen[cleaned.LanguageCode] {
			return scheme, ErrDuplicateLanguage
		}
		seen[cleaned.LanguageCode] = true
		scheme.LanguageData[i] = cleaned
	}

	return scheme, nil
}

func validateTranslation(tr model.SchemeTranslation) (model.SchemeTranslation, error) {
	tr.LanguageCode = normalizeLanguage(tr.LanguageCode)
	tr.Name = strings.TrimSpace(tr.Name)
	tr.Description = strings.TrimSpace(tr.Description)

	if !language.IsValid(tr.LanguageCode) {
		return tr, invalidf("language_code", "unknown language code")
	}
	if tr.Name == "" {
		return tr, invalidf("name", "scheme name is required")
	}

	tr.Benefits = dropBlank(tr.Benefits)
	tr.Eligibility = dropBlank(tr.Eligibility)
	tr.ApplicationProcess = dropBlank(tr.ApplicationProcess)
	return tr, nil
}

// dropBlank trims each item and removes empty ones, preserving order.
func dropBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func normalizeLanguage(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
