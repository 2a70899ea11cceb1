package dtos

import "time"

// JobPostingRequest is used for both create and replace (full-replace
// semantics). The enum values are validated before any row is written;
// no ordering constraint between the compensation bounds is enforced.
type JobPostingRequest struct {
	CompanyID      uint   `json:"company_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	LocationType   string `json:"location_type" binding:"required,oneof=REMOTE HYBRID ON_SITE"`
	EmploymentType string `json:"employment_type" binding:"required,oneof=FULLTIME PARTTIME CONTRACT"`

	// Optional fields
	CompensationMin *float64 `json:"compensation_min"`
	CompensationMax *float64 `json:"compensation_max"`
}

// GenerateDescriptionRequest drives POST /job-postings/:id/description.
// Stream selects the non-persisting streaming mode; Structured asks the
// model for fixed section headers and parses them out of the reply.
type GenerateDescriptionRequest struct {
	RequiredTools []string `json:"required_tools" binding:"required,min=1,dive,required"`
	Stream        bool     `json:"stream"`
	Structured    bool     `json:"structured"`
}

type GenerateDescriptionResponse struct {
	JobID       uint                      `json:"job_id"`
	Description string                    `json:"description"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Sections    *StructuredJobDescription `json:"sections,omitempty"`
}

// StructuredJobDescription holds whatever sections the model actually
// produced. A header missing from the reply leaves its field empty.
type StructuredJobDescription struct {
	Overview         string   `json:"overview,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	CompanyCulture   string   `json:"company_culture,omitempty"`
	LocationInfo     string   `json:"location_info,omitempty"`
	CompensationInfo string   `json:"compensation_info,omitempty"`
}
