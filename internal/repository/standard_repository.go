package repository

import (
	"fitmate/internal/models"

	"gorm.io/gorm"
)

type StandardRepository interface {
	Create(standard *models.Standard) error
	FindByID(id uint) (*models.Standard, error)
	FindAll(testName, gender string) ([]models.Standard, error)
	FindMatch(testName, gender string, age int, variation string) (*models.Standard, error)
	Update(standard *models.Standard) error
	Delete(id uint) error
}

type standardRepository struct {
	db *gorm.DB
}

func NewStandardRepository(db *gorm.DB) StandardRepository {
	return &standardRepository{db: db}
}

func (r *standardRepository) Create(standard *models.Standard) error {
	return r.db.Create(standard).Error
}

func (r *standardRepository) FindByID(id uint) (*models.Standard, error) {
	var standard models.Standard
	err := r.db.First(&standard, id).Error
	if err != nil {
		return nil, err
	}
	return &standard, nil
}

func (r *standardRepository) FindAll(testName, gender string) ([]models.Standard, error) {
	var standards []models.Standard
	query := r.db.Order("test_name, gender, variation, age_min")
	if testName != "" {
		query = query.Where("test_name = ?", testName)
	}
	if gender != "" {
		query = query.Where("gender = ?", gender)
	}
	err := query.Find(&standards).Error
	return standards, err
}

func (r *standardRepository) FindMatch(testName, gender string, age int, variation string) (*models.Standard, error) {
	var standard models.Standard
	err := r.db.Where(
		"test_name = ? AND gender = ? AND variation = ? AND ? BETWEEN age_min AND age_max",
		testName, gender, variation, age,
	).First(&standard).Error
	if err != nil {
		return nil, err
	}
	return &standard, nil
}

func (r *standardRepository) Update(standard *models.Standard) error {
	return r.db.Save(standard).Error
}

func (r *standardRepository) Delete(id uint) error {
	return r.db.Delete(&models.Standard{}, id).Error
}
