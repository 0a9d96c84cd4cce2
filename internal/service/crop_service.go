package service

import (
	"context"
	"strings"

	"kisanbandhu/console/internal/language"
	"kisanbandhu/console/internal/model"
	"kisanbandhu/console/internal/upstream"
)

// CropService manages crop guides and their per-language paragraph
// sections. Crops are keyed by name on the platform backend; paragraph
// edits are keyed by the title the paragraph had when the editor loaded
// it, so a renamed title still finds its record.
type CropService interface {
	List(ctx context.Context) ([]model.Crop, error)
	Get(ctx context.Context, name, languageCode string) (model.Crop, error)
	Add(ctx context.Context, crop model.Crop) error
	Update(ctx context.Context, oldName, newName, imageURL string) error
	Delete(ctx context.Context, name string, confirm bool) error

	AddParagraph(ctx context.Context, cropName string, para model.CropParagraph) error
	UpdateParagraph(ctx context.Context, cropName, languageCode, originalTitle, newTitle, newContent string) error
	DeleteParagraph(ctx context.Context, cropName, languageCode, title string, confirm bool) error
}

type cropService struct {
	upstream upstream.Client
}

// NewCropService creates a new crop service.
func NewCropService(client upstream.Client) CropService {
	return &cropService{upstream: client}
}

func (s *cropService) List(ctx context.Context) ([]model.Crop, error) {
	return s.upstream.Crops(ctx)
}

// Get loads one crop with the paragraphs of the given language. A valid
// language with no translated paragraphs yet returns the crop with an
// empty section list.
func (s *cropService) Get(ctx context.Context, name, languageCode string) (model.Crop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Crop{}, invalidf("name", "crop name is required")
	}
	languageCode = normalizeLanguage(languageCode)
	if languageCode == "" {
		languageCode = language.DefaultCode
	}
	if !language.IsValid(languageCode) {
		return model.Crop{}, invalidf("language_code", "unknown language code")
	}

	crop, err := s.upstream.CropByName(ctx, name, languageCode)
	if err != nil {
		return model.Crop{}, err
	}
	if crop.Paragraphs == nil {
		crop.Paragraphs = []model.CropParagraph{}
	}
	return crop, nil
}

func (s *cropService) Add(ctx context.Context, crop model.Crop) error {
	crop.Name = strings.TrimSpace(crop.Name)
	crop.ImageURL = strings.TrimSpace(crop.ImageURL)
	if crop.Name == "" {
		return invalidf("name", "crop name is required")
	}
	for i, para := range crop.Paragraphs {
		cleaned, err := validateParagraph(para)
		if err != nil {
			return err
		}
		crop.Paragraphs[i] = cleaned
	}
	return s.upstream.AddCrop(ctx, crop)
}

func (s *cropService) Update(ctx context.Context, oldName, newName, imageURL string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" {
		return invalidf("old_name", "crop name is required")
	}
	if newName == "" {
		return invalidf("new_name", "crop name is required")
	}
	return s.upstream.UpdateCrop(ctx, oldName, newName, strings.TrimSpace(imageURL))
}

func (s *cropService) Delete(ctx context.Context, name string, confirm bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("name", "crop name is required")
	}
	if !confirm {
		return ErrConfirmRequired
	}
	return s.upstream.DeleteCrop(ctx, name)
}

func (s *cropService) AddParagraph(ctx context.Context, cropName string, para model.CropParagraph) error {
	cropName = strings.TrimSpace(cropName)
	if cropName == "" {
		return invalidf("name", "crop name is required")
	}
	cleaned, err := validateParagraph(para)
	if err != nil {
		return err
	}
	return s.upstream.AddCropParagraph(ctx, cropName, cleaned)
}

func (s *cropService) UpdateParagraph(ctx context.Context, cropName, languageCode, originalTitle, newTitle, newContent string) error {
	cropName = strings.TrimSpace(cropName)
	originalTitle = strings.TrimSpace(originalTitle)
	newTitle = strings.TrimSpace(newTitle)
	newContent = strings.TrimSpace(newContent)
	languageCode = normalizeLanguage(languageCode)

	if cropName == "" {
		return invalidf("name", "crop name is required")
	}
	if !language.IsValid(languageCode) {
		return invalidf("language_code", "unknown language code")
	}
	if originalTitle == "" {
		return invalidf("paragraph_title", "original paragraph title is required")
	}
	if newTitle == "" {
		return invalidf("new_title", "paragraph title is required")
	}
	if newContent == "" {
		return invalidf("new_content", "paragraph content is required")
	}
	return s.upstream.UpdateCropParagraph(ctx, cropName, languageCode, originalTitle, newTitle, newContent)
}

func (s *cropService) DeleteParagraph(ctx context.Context, cropName, languageCode, title string, confirm bool) error {
	cropName = strings.TrimSpace(cropName)
	title = strings.TrimSpace(title)
	languageCode = normalizeLanguage(languageCode)

	if cropName == "" {
		return invalidf("name", "crop name is required")
	}
	if !language.IsValid(languageCode) {
		return invalidf("language_code", "unknown language code")
	}
	if title == "" {
		return invalidf("paragraph_title", "paragraph title is required")
	}
	if !confirm {
		return ErrConfirmRequired
	}
	return s.upstream.DeleteCropParagraph(ctx, cropName, languageCode, title)
}

func validateParagraph(para model.CropParagraph) (model.CropParagraph, error) {
	para.LanguageCode = normalizeLanguage(para.LanguageCode)
	para.Title = strings.TrimSpace(para.Title)
	para.Content = strings.TrimSpace(para.Content)

	if !language.IsValid(para.LanguageCode) {
		return para, invalidf("language_code", "unknown language code")
	}
	if para.Title == "" {
		return para, invalidf("paragraph_title", "paragraph title is required")
	}
	if para.Content == "" {
		return para, invalidf("paragraph_content", "paragraph content is required")
	}
	return para, nil
}
