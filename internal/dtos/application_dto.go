package dtos

// ApplicationRequest is the body for submit and replace. The path
// candidate id is authoritative on replace; the body's is ignored there.
type ApplicationRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`

	// Optional fields
	JobID string `json:"job_id"`
}

// ApplicationPatch updates only the fields present in the body.
type ApplicationPatch struct {
	Email *string `json:"email"`
	JobID *string `json:"job_id"`
}
