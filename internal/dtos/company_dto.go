package dtos

// CompanyRequest is used for both create and replace. Replace has
// full-replace semantics: optional fields omitted from the payload are
// cleared on the stored row.
type CompanyRequest struct {
	Name string `json:"name" binding:"required"`

	// Optional fields
	Industry  string `json:"industry"`
	URL       string `json:"url"`
	Headcount *int   `json:"headcount"`
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	Glassdoor string `json:"glassdoor"`
	IsPublic  bool   `json:"is_public"`
}
