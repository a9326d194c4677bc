package repository

import (
	"time"

	"fitmate/internal/models"

	"gorm.io/gorm"
)

type RecalcJobRepository interface {
	SaveJob(job *models.RecalcJob) error
	GetJobByID(id string) (*models.RecalcJob, error)
	UpdateJob(job *models.RecalcJob) error
	GetRecentJobs(limit int) ([]models.RecalcJob, error)
}

type recalcJobRepository struct {
	db *gorm.DB
}

func NewRecalcJobRepository(db *gorm.DB) RecalcJobRepository {
	return &recalcJobRepository{db: db}
}

func (r *recalcJobRepository) SaveJob(job *models.RecalcJob) error {
	return r.db.Create(job).Error
}

func (r *recalcJobRepository) GetJobByID(id string) (*models.RecalcJob, error) {
	var job models.RecalcJob
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *recalcJobRepository) UpdateJob(job *models.RecalcJob) error {
	job.UpdatedAt = time.Now()
	return r.db.Save(job).Error
}

func (r *recalcJobRepository) GetRecentJobs(limit int) ([]models.RecalcJob, error) {
	var jobs []models.RecalcJob
	if limit <= 0 {
		limit = 20
	}
	err := r.db.Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}
