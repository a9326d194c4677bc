package mocks

import (
	"time"

	"fitmate/internal/models"
	"fitmate/internal/norms"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(client *models.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(id uint) (*models.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllByTrainerID(trainerID uint, limit int) ([]models.Client, error) {
	args := m.Called(trainerID, limit)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientRepository) Update(client *models.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockClientRepository) CountByTrainerID(trainerID uint) (int64, error) {
	args := m.Called(trainerID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockAssessmentRepository
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Save(assessment *models.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) Update(assessment *models.Assessment) error {
	args := m.Called(assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) FindByID(id uint) (*models.Assessment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindByClientID(clientID uint, limit int) ([]models.Assessment, error) {
	args := m.Called(clientID, limit)
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindByClientIDAndDateRange(clientID uint, startDate, endDate time.Time) ([]models.Assessment, error) {
	args := m.Called(clientID, startDate, endDate)
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) FindBatch(offset, limit int) ([]models.Assessment, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.Assessment), args.Error(1)
}

func (m *MockAssessmentRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssessmentRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockStandardRepository
type MockStandardRepository struct {
	mock.Mock
}

func (m *MockStandardRepository) Create(standard *models.Standard) error {
	args := m.Called(standard)
	return args.Error(0)
}

func (m *MockStandardRepository) FindByID(id uint) (*models.Standard, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Standard), args.Error(1)
}

func (m *MockStandardRepository) FindAll(testName, gender string) ([]models.Standard, error) {
	args := m.Called(testName, gender)
	return args.Get(0).([]models.Standard), args.Error(1)
}

func (m *MockStandardRepository) FindMatch(testName, gender string, age int, variation string) (*models.Standard, error) {
	args := m.Called(testName, gender, age, variation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Standard), args.Error(1)
}

func (m *MockStandardRepository) Update(standard *models.Standard) error {
	args := m.Called(standard)
	return args.Error(0)
}

func (m *MockStandardRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockNormativeRepository
type MockNormativeRepository struct {
	mock.Mock
}

func (m *MockNormativeRepository) Create(datum *models.NormativeDatum) error {
	args := m.Called(datum)
	return args.Error(0)
}

func (m *MockNormativeRepository) FindAll(testName, gender string) ([]models.NormativeDatum, error) {
	args := m.Called(testName, gender)
	return args.Get(0).([]models.NormativeDatum), args.Error(1)
}

func (m *MockNormativeRepository) FindMatch(testName, gender string, age int) (*models.NormativeDatum, error) {
	args := m.Called(testName, gender, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NormativeDatum), args.Error(1)
}

func (m *MockNormativeRepository) Update(datum *models.NormativeDatum) error {
	args := m.Called(datum)
	return args.Error(0)
}

func (m *MockNormativeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecalcJobRepository
type MockRecalcJobRepository struct {
	mock.Mock
}

func (m *MockRecalcJobRepository) SaveJob(job *models.RecalcJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockRecalcJobRepository) GetJobByID(id string) (*models.RecalcJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecalcJob), args.Error(1)
}

func (m *MockRecalcJobRepository) UpdateJob(job *models.RecalcJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockRecalcJobRepository) GetRecentJobs(limit int) ([]models.RecalcJob, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.RecalcJob), args.Error(1)
}

// MockNormsSource is a mock implementation of norms.Source
type MockNormsSource struct {
	mock.Mock
}

func (m *MockNormsSource) GetStats(testName, gender string, age int) (*norms.Stats, error) {
	args := m.Called(testName, gender, age)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*norms.Stats), args.Error(1)
}

func (m *MockNormsSource) GetAgeSeries(testName, gender string) ([]norms.AgeBandStats, error) {
	args := m.Called(testName, gender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]norms.AgeBandStats), args.Error(1)
}
