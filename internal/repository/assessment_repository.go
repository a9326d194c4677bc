package repository

import (
	"time"

	"fitmate/internal/models"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Save(assessment *models.Assessment) error
	Update(assessment *models.Assessment) error
	FindByID(id uint) (*models.Assessment, error)
	FindByClientID(clientID uint, limit int) ([]models.Assessment, error)
	FindByClientIDAndDateRange(clientID uint, startDate, endDate time.Time) ([]models.Assessment, error)
	FindBatch(offset, limit int) ([]models.Assessment, error)
	Count() (int64, error)
	Delete(id uint) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Save(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) Update(assessment *models.Assessment) error {
	return r.db.Save(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.Preload("Client").First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByClientID(clientID uint, limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	query := r.db.Where("client_id = ?", clientID).Order("assessed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindByClientIDAndDateRange(clientID uint, startDate, endDate time.Time) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("client_id = ? AND assessed_at BETWEEN ? AND ?", clientID, startDate, endDate).
		Order("assessed_at DESC").
		Find(&assessments).Error
	return assessments, err
}

// FindBatch pages through all assessments with their clients preloaded,
// used by the batch recalculation worker.
func (r *assessmentRepository) FindBatch(offset, limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Preload("Client").Order("id ASC").Offset(offset).Limit(limit).Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Assessment{}).Count(&count).Error
	return count, err
}

func (r *assessmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Assessment{}, id).Error
}
