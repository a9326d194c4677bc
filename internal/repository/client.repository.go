package repository

import (
	"fitmate/internal/models"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *models.Client) error
	FindByID(id uint) (*models.Client, error)
	FindAllByTrainerID(trainerID uint, limit int) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uint) error
	CountByTrainerID(trainerID uint) (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAllByTrainerID(trainerID uint, limit int) ([]models.Client, error) {
	var clients []models.Client
	query := r.db.Where("trainer_id = ?", trainerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Client{}, id).Error
}

func (r *clientRepository) CountByTrainerID(trainerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("trainer_id = ?", trainerID).Count(&count).Error
	return count, err
}
