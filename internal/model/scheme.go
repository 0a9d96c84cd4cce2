package model

// Scheme is a government or private support program as the platform API
// exchanges it. Scalar fields are shared across languages; the localized text
// lives in LanguageData.
type Scheme struct {
	ID            int64               `json:"id,omitempty"`
	Type          string              `json:"type"`
	GovLevel      *string             `json:"gov_level"`
	StateOrOrg    string              `json:"state_or_org"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	Status        string              `json:"status"`
	OfficialLink  string              `json:"official_link"`
	FundingAmount Amount              `json:"funding_amount"`
	ImageURL      string              `json:"image_url"`
	LanguageData  []SchemeTranslation `json:"language_data,omitempty"`

	// Set on list responses, where the backend flattens the requested
	// language's translation into the scheme itself.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Scheme status values.
const (
	SchemeStatusActive  = "ACTIVE"
	SchemeStatusExpired = "EXPIRED"
)

// SchemeTranslation holds one language's text for a scheme: a name, a
// description and three ordered string lists.
type SchemeTranslation struct {
	LanguageCode       string   `json:"language_code"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Benefits           []string `json:"benefits"`
	Eligibility        []string `json:"eligibility"`
	ApplicationProcess []string `json:"application_process"`
}
