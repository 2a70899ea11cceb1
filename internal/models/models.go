package models

import (
	"time"
)

// LocationType and EmploymentType are the wire values stored in the database.
// Case-sensitive; validated at the request boundary.
type LocationType string

const (
	LocationRemote LocationType = "REMOTE"
	LocationHybrid LocationType = "HYBRID"
	LocationOnSite LocationType = "ON_SITE"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULLTIME"
	EmploymentPartTime EmploymentType = "PARTTIME"
	EmploymentContract EmploymentType = "CONTRACT"
)

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string `gorm:"not null" json:"name"`
	Industry  string `json:"industry"`
	URL       string `json:"url"`
	Headcount *int   `json:"headcount"`
	Country   string `json:"country"`
	State     string `json:"state"`
	City      string `json:"city"`
	Glassdoor string `json:"glassdoor"`
	IsPublic  bool   `gorm:"default:false" json:"is_public"`

	// 'omitempty' prevents infinite loops when fetching a posting -> Company -> Postings -> ...
	Postings []JobPosting `gorm:"foreignKey:CompanyID" json:"postings,omitempty"`
}

type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CompanyID should reference an existing Company; not enforced by a
	// constraint, only checked when a description is generated.
	CompanyID uint `gorm:"not null" json:"company_id"`

	Title           string         `gorm:"not null" json:"title"`
	CompensationMin *float64       `json:"compensation_min"`
	CompensationMax *float64       `json:"compensation_max"`
	LocationType    LocationType   `gorm:"not null" json:"location_type"`
	EmploymentType  EmploymentType `gorm:"not null" json:"employment_type"`

	// Written only by the synchronous description-generation flow.
	Description string `gorm:"type:text" json:"description"`
}

// Application lives only in process memory and is lost on restart.
// CandidateID is the lookup key; the store does not enforce uniqueness.
type Application struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	JobID       string `json:"job_id,omitempty"`
	CompanyName string `json:"company_name"`
}
