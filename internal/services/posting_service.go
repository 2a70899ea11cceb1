package services

import (
	"fmt"

	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"gorm.io/gorm"
)

type JobPostingService struct {
	DB *gorm.DB
}

func NewJobPostingService(db *gorm.DB) *JobPostingService {
	return &JobPostingService{
		DB: db,
	}
}

func (s *JobPostingService) Create(req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	posting := &models.JobPosting{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		CompensationMin: req.CompensationMin,
		CompensationMax: req.CompensationMax,
		LocationType:    models.LocationType(req.LocationType),
		EmploymentType:  models.EmploymentType(req.EmploymentType),
	}
	if err := s.DB.Create(posting).Error; err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *JobPostingService) Get(id uint) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := s.DB.First(&posting, id).Error; err != nil {
		return nil, err
	}
	return &posting, nil
}

// ListRaw returns every row rendered as a string of its column map,
// matching the raw-dump contract of GET /get_job_postings.
func (s *JobPostingService) ListRaw() ([]string, error) {
	var rows []map[string]interface{}
	if err := s.DB.Model(&models.JobPosting{}).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, fmt.Sprintf("%v", row))
	}
	return out, nil
}

// Update replaces every mutable field except the generated description,
// which only the generation flow writes.
func (s *JobPostingService) Update(id uint, req *dtos.JobPostingRequest) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := s.DB.First(&posting, id).Error; err != nil {
		return nil, err
	}

	posting.CompanyID = req.CompanyID
	posting.Title = req.Title
	posting.CompensationMin = req.CompensationMin
	posting.CompensationMax = req.CompensationMax
	posting.LocationType = models.LocationType(req.LocationType)
	posting.EmploymentType = models.EmploymentType(req.EmploymentType)

	if err := s.DB.Save(&posting).Error; err != nil {
		return nil, err
	}
	return &posting, nil
}

func (s *JobPostingService) Delete(id uint) error {
	var posting models.JobPosting
	if err := s.DB.First(&posting, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&posting).Error
}

func (s *JobPostingService) SaveDescription(posting *models.JobPosting, description string) error {
	posting.Description = description
	return s.DB.Model(posting).Update("description", description).Error
}
