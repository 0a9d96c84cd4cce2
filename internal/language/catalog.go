// Package language holds the static catalog of languages the platform
// publishes content in. Every multilingual form and filter validates its
// language code against this table.
package language

// Language maps a short code to its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultCode is the language new sections and filters start from.
const DefaultCode = "en"

// catalog order matches the dropdown order of the admin panel.
var catalog = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "te", Name: "Telugu"},
	{Code: "mr", Name: "Marathi"},
	{Code: "ta", Name: "Tamil"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "or", Name: "Odia"},
	{Code: "as", Name: "Assamese"},
	{Code: "ur", Name: "Urdu"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(catalog))
	for _, l := range catalog {
		m[l.Code] = l
	}
	return m
}()

// All returns the catalog in display order. The returned slice must not be
// mutated.
func All() []Language {
	return catalog
}

// IsValid reports whether code is a known catalog language.
func IsValid(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Name returns the display name for code, or the code itself when unknown.
func Name(code string) string {
	if l, ok := byCode[code]; ok {
		return l.Name
	}
	return code
}
