package service

import (
	"context"
	"strings"

	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/service/ai"
)

// TranslateService drafts translations with the configured AI provider.
// Output goes back to the editor as a suggestion; the admin reviews and
// saves through the normal content flows.
type TranslateService interface {
	// Enabled reports whether an AI provider is configured.
	Enabled() bool
	// Provider returns the configured provider name, or "" when disabled.
	Provider() string
	// RateLimit returns the assistant call rate limit in requests per second.
	RateLimit() int
	// Check sends a connectivity check to the provider and returns its reply.
	Check(ctx context.Context) (string, error)
	// TranslateText translates one piece of content text.
	TranslateText(ctx context.Context, text, textType, targetLanguage string) (string, error)
	// TranslateList translates an ordered list of short items, preserving
	// order and count.
	TranslateList(ctx context.Context, items []string, listType, targetLanguage string) ([]string, error)
}

type translateService struct {
	provider ai.Provider
	limiter  *ai.RateLimiter
}

// NewTranslateService creates a translate service. A nil provider disables
// the assistant; calls then return ErrAssistantDisabled.
func NewTranslateService(provider ai.Provider, limiter *ai.RateLimiter) TranslateService {
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &translateService{provider: provider, limiter: limiter}
}

func (s *translateService) Enabled() bool {
	return s.provider != nil
}

func (s *translateService) Provider() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

func (s *translateService) RateLimit() int {
	return s.limiter.Limit()
}

func (s *translateService) Check(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", ErrAssistantDisabled
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.provider.Test(ctx)
}

func (s *translateService) TranslateText(ctx context.Context, text, textType, targetLanguage string) (string, error) {
	if s.provider == nil {
		return "", ErrAssistantDisabled
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalidf("text", "text is required")
	}
	langName, err := targetLanguageName(targetLanguage)
	if err != nil {
		return "", err
	}
	if textType = strings.TrimSpace(textType); textType == "" {
		textType = "content"
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	out, err := s.provider.Complete(ctx, ai.GetTranslateTextPrompt(textType, langName), text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (s *translateService) TranslateList(ctx context.Context, items []string, listType, targetLanguage string) ([]string, error) {
	if s.provider == nil {
		return nil, ErrAssistantDisabled
	}

	items = dropBlank(items)
	if len(items) == 0 {
		return nil, invalidf("items", "at least one item is required")
	}
	langName, err := targetLanguageName(targetLanguage)
	if err != nil {
		return nil, err
	}
	if listType = strings.TrimSpace(listType); listType == "" {
		listType = "content"
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	out, err := s.provider.Complete(ctx, ai.GetTranslateListPrompt(listType, langName), strings.Join(items, "\n"))
	if err != nil {
		return nil, err
	}

	translated := dropBlank(strings.Split(strings.TrimSpace(out), "\n"))
	// The model contract is line-per-item. A mismatched count means the
	// draft cannot be mapped back onto the form, so reject it rather than
	// guess.
	if len(translated) != len(items) {
		return nil, invalidf("items", "translation draft did not match the item count")
	}
	return translated, nil
}

func targetLanguageName(code string) (string, error) {
	code = normalizeLanguage(code)
	if !language.IsValid(code) {
		return "", invalidf("target_language", "unknown language code")
	}
	return language.Name(code), nil
}
