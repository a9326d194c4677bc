package repository

import (
	"errors"

	"fitmate/internal/models"
	"fitmate/internal/norms"

	"gorm.io/gorm"
)

type NormativeRepository interface {
	Create(datum *models.NormativeDatum) error
	FindAll(testName, gender string) ([]models.NormativeDatum, error)
	FindMatch(testName, gender string, age int) (*models.NormativeDatum, error)
	Update(datum *models.NormativeDatum) error
	Delete(id uint) error
}

type normativeRepository struct {
	db *gorm.DB
}

func NewNormativeRepository(db *gorm.DB) NormativeRepository {
	return &normativeRepository{db: db}
}

func (r *normativeRepository) Create(datum *models.NormativeDatum) error {
	return r.db.Create(datum).Error
}

func (r *normativeRepository) FindAll(testName, gender string) ([]models.NormativeDatum, error) {
	var data []models.NormativeDatum
	query := r.db.Order("test_name, gender, age_min")
	if testName != "" {
		query = query.Where("test_name = ?", testName)
	}
	if gender != "" {
		query = query.Where("gender = ?", gender)
	}
	err := query.Find(&data).Error
	return data, err
}

func (r *normativeRepository) FindMatch(testName, gender string, age int) (*models.NormativeDatum, error) {
	var datum models.NormativeDatum
	err := r.db.Where(
		"test_name = ? AND gender = ? AND ? BETWEEN age_min AND age_max",
		testName, gender, age,
	).First(&datum).Error
	if err != nil {
		return nil, err
	}
	return &datum, nil
}

func (r *normativeRepository) Update(datum *models.NormativeDatum) error {
	return r.db.Save(datum).Error
}

func (r *normativeRepository) Delete(id uint) error {
	return r.db.Delete(&models.NormativeDatum{}, id).Error
}

// NormsSource adapts the normative repository to the percentile module's
// read interface. Missing rows yield nil results, never errors.
type NormsSource struct {
	repo NormativeRepository
}

func NewNormsSource(repo NormativeRepository) *NormsSource {
	return &NormsSource{repo: repo}
}

func (s *NormsSource) GetStats(testName, gender string, age int) (*norms.Stats, error) {
	row, err := s.repo.FindMatch(testName, gender, age)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &norms.Stats{Mean: row.Mean, StdDev: row.StdDev, Sample: row.Sample}, nil
}

func (s *NormsSource) GetAgeSeries(testName, gender string) ([]norms.AgeBandStats, error) {
	rows, err := s.repo.FindAll(testName, gender)
	if err != nil {
		return nil, err
	}
	series := make([]norms.AgeBandStats, 0, len(rows))
	for _, row := range rows {
		series = append(series, norms.AgeBandStats{
			AgeMin: row.AgeMin,
			AgeMax: row.AgeMax,
			Mean:   row.Mean,
			StdDev: row.StdDev,
		})
	}
	return series, nil
}
