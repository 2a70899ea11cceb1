package services

import (
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{
		DB: db,
	}
}

func (s *CompanyService) Create(req *dtos.CompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:      req.Name,
		Industry:  req.Industry,
		URL:       req.URL,
		Headcount: req.Headcount,
		Country:   req.Country,
		State:     req.State,
		City:      req.City,
		Glassdoor: req.Glassdoor,
		IsPublic:  req.IsPublic,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Get(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) List() ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Update replaces every mutable field with the payload's values,
// clearing optionals the payload omits.
func (s *CompanyService) Update(id uint, req *dtos.CompanyRequest) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Industry = req.Industry
	company.URL = req.URL
	company.Headcount = req.Headcount
	company.Country = req.Country
	company.State = req.State
	company.City = req.City
	company.Glassdoor = req.Glassdoor
	company.IsPublic = req.IsPublic

	if err := s.DB.Save(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) Delete(id uint) error {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&company).Error
}
