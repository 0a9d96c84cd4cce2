package model

// NewsItem is one news record in a single language.
type NewsItem struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Source       string `json:"source,omitempty"`
	LanguageCode string `json:"language_code"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	Date         string `json:"date,omitempty"`
}
