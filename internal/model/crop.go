package model

// Crop is an agricultural commodity record. The name acts as the natural key
// for update and delete; informational text is stored as per-language
// paragraphs keyed by title within a language.
type Crop struct {
	ID         int64           `json:"id,omitempty"`
	Name       string          `json:"name"`
	ImageURL   string          `json:"image_url"`
	Paragraphs []CropParagraph `json:"paragraphs,omitempty"`
}

// CropParagraph is one (title, content) pair in one language.
type CropParagraph struct {
	LanguageCode string `json:"language_code"`
	Title        string `json:"paragraph_title"`
	Content      string `json:"paragraph_content"`
}
