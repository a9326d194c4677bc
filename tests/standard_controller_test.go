package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitmate/internal/controllers"
	"fitmate/internal/models"
	"fitmate/internal/repository"
	"fitmate/internal/services"
	"fitmate/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type standardControllerMocks struct {
	repo          *mocks.MockStandardRepository
	normativeRepo *mocks.MockNormativeRepository
	jobRepo       *mocks.MockRecalcJobRepository
	assessments   *mocks.MockAssessmentRepository
	worker        *services.RecalcWorker
}

func setupStandardController(workerRunning bool) (*controllers.StandardController, *standardControllerMocks) {
	m := &standardControllerMocks{
		repo:          new(mocks.MockStandardRepository),
		normativeRepo: new(mocks.MockNormativeRepository),
		jobRepo:       new(mocks.MockRecalcJobRepository),
		assessments:   new(mocks.MockAssessmentRepository),
	}
	source := repository.NewStandardsSource(m.repo, nil)
	m.worker = services.NewRecalcWorker(m.jobRepo, m.assessments, source, 1)
	if workerRunning {
		m.worker.Start()
	}
	controller := controllers.NewStandardController(m.repo, m.normativeRepo, source, m.jobRepo, m.worker)
	return controller, m
}

func TestGetStandards(t *testing.T) {
	controller, m := setupStandardController(false)
	m.repo.On("FindAll", "push_up", "male").Return([]models.Standard{
		{ID: 1, TestName: "push_up", Gender: "male", AgeMin: 20, AgeMax: 29},
	}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/standards", controller.GetStandards)

	req := httptest.NewRequest("GET", "/standards?test=push_up&gender=male", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 1)

	m.repo.AssertExpectations(t)
}

func TestCreateStandard(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockStandardRepository)
		expectedStatus int
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"test_name": "push_up",
				"gender":    "male",
				"age_min":   20,
				"age_max":   29,
				"variation": "standard",
				"cutoff2":   22,
				"cutoff3":   29,
				"cutoff4":   36,
				"direction": "higher",
			},
			setupMock: func(m *mocks.MockStandardRepository) {
				m.On("Create", mock.AnythingOfType("*models.Standard")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid direction",
			requestBody: map[string]interface{}{
				"test_name": "push_up",
				"gender":    "male",
				"age_min":   20,
				"age_max":   29,
				"direction": "sideways",
			},
			setupMock:      func(m *mocks.MockStandardRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "inverted age range",
			requestBody: map[string]interface{}{
				"test_name": "push_up",
				"gender":    "male",
				"age_min":   40,
				"age_max":   29,
				"direction": "higher",
			},
			setupMock:      func(m *mocks.MockStandardRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupStandardController(false)
			tt.setupMock(m.repo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.POST("/standards", controller.CreateStandard)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/standards", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStandardNotFound(t *testing.T) {
	controller, m := setupStandardController(false)
	m.repo.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/standards/:id", controller.UpdateStandard)

	body, _ := json.Marshal(map[string]interface{}{"cutoff2": 20})
	req := httptest.NewRequest("PUT", "/standards/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	m.repo.AssertExpectations(t)
}

func TestDeleteStandard(t *testing.T) {
	controller, m := setupStandardController(false)
	m.repo.On("Delete", uint(5)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/standards/:id", controller.DeleteStandard)

	req := httptest.NewRequest("DELETE", "/standards/5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.repo.AssertExpectations(t)
}

func TestGetNormativeData(t *testing.T) {
	controller, m := setupStandardController(false)
	m.normativeRepo.On("FindAll", "", "").Return([]models.NormativeDatum{
		{ID: 1, TestName: "push_up", Gender: "male"},
	}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/standards/normative", controller.GetNormativeData)

	req := httptest.NewRequest("GET", "/standards/normative", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.normativeRepo.AssertExpectations(t)
}

func TestRecalculateAllWorkerNotRunning(t *testing.T) {
	controller, m := setupStandardController(false)
	m.jobRepo.On("SaveJob", mock.AnythingOfType("*models.RecalcJob")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/standards/recalculate", controller.RecalculateAll)

	req := httptest.NewRequest("POST", "/standards/recalculate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	m.jobRepo.AssertExpectations(t)
}

func TestRecalculateAllAccepted(t *testing.T) {
	controller, m := setupStandardController(true)
	defer m.worker.Stop()

	m.jobRepo.On("SaveJob", mock.AnythingOfType("*models.RecalcJob")).Return(nil)
	// The worker may pick the job up before the test finishes.
	m.jobRepo.On("GetJobByID", mock.AnythingOfType("string")).Return(&models.RecalcJob{ID: "job", Status: models.JobStatusPending}, nil).Maybe()
	m.jobRepo.On("UpdateJob", mock.AnythingOfType("*models.RecalcJob")).Return(nil).Maybe()
	m.assessments.On("Count").Return(int64(0), nil).Maybe()
	m.assessments.On("FindBatch", mock.AnythingOfType("int"), mock.AnythingOfType("int")).Return([]models.Assessment{}, nil).Maybe()

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.POST("/standards/recalculate", controller.RecalculateAll)

	req := httptest.NewRequest("POST", "/standards/recalculate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "pending", data["status"])
}

func TestGetRecalcJob(t *testing.T) {
	controller, m := setupStandardController(false)
	m.jobRepo.On("GetJobByID", "abc-123").Return(&models.RecalcJob{ID: "abc-123", Status: models.JobStatusCompleted}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/standards/recalculate/:job_id", controller.GetRecalcJob)

	req := httptest.NewRequest("GET", "/standards/recalculate/abc-123", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "completed", data["status"])

	m.jobRepo.AssertExpectations(t)
}
