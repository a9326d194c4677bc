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
	"fitmate/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupClientController() (*controllers.ClientController, *mocks.MockClientRepository) {
	mockRepo := new(mocks.MockClientRepository)
	controller := controllers.NewClientController(mockRepo)
	return controller, mockRepo
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful creation",
			userID: 1,
			requestBody: map[string]interface{}{
				"name":       "Kim Minsoo",
				"gender":     "male",
				"birth_date": "2000-03-15T00:00:00Z",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("Create", mock.AnythingOfType("*models.Client")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Client created successfully",
		},
		{
			name:   "invalid gender",
			userID: 1,
			requestBody: map[string]interface{}{
				"name":   "Kim Minsoo",
				"gender": "unknown",
			},
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "invalid JSON",
			userID:         1,
			requestBody:    nil,
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:   "repository error",
			userID: 1,
			requestBody: map[string]interface{}{
				"name":   "Kim Minsoo",
				"gender": "male",
			},
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("Create", mock.AnythingOfType("*models.Client")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/clients", controller.CreateClient)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/clients", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateClientSetsTrainer(t *testing.T) {
	controller, mockRepo := setupClientController()
	mockRepo.On("Create", mock.MatchedBy(func(c *models.Client) bool {
		return c.TrainerID == 7
	})).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(7))
	router.POST("/clients", controller.CreateClient)

	body, _ := json.Marshal(map[string]interface{}{
		"name":       "Lee Jiwoo",
		"gender":     "female",
		"birth_date": "1995-11-02T00:00:00Z",
		"trainer_id": 99, // must be ignored
	})
	req := httptest.NewRequest("POST", "/clients", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetClients(t *testing.T) {
	controller, mockRepo := setupClientController()
	mockRepo.On("FindAllByTrainerID", uint(1), 0).Return([]models.Client{
		{ID: 1, TrainerID: 1, Name: "Kim Minsoo"},
		{ID: 2, TrainerID: 1, Name: "Lee Jiwoo"},
	}, nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/clients", controller.GetClients)

	req := httptest.NewRequest("GET", "/clients", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)

	mockRepo.AssertExpectations(t)
}

func TestGetClientByID(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		clientID       string
		setupMock      func(*mocks.MockClientRepository)
		expectedStatus int
	}{
		{
			name:     "found",
			userID:   1,
			clientID: "1",
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(1)).Return(&models.Client{ID: 1, TrainerID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "owned by another trainer",
			userID:   2,
			clientID: "1",
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(1)).Return(&models.Client{ID: 1, TrainerID: 1}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "not found",
			userID:   1,
			clientID: "99",
			setupMock: func(m *mocks.MockClientRepository) {
				m.On("FindByID", uint(99)).Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			userID:         1,
			clientID:       "abc",
			setupMock:      func(m *mocks.MockClientRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupClientController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.GET("/clients/:id", controller.GetClientByID)

			req := httptest.NewRequest("GET", "/clients/"+tt.clientID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateClient(t *testing.T) {
	controller, mockRepo := setupClientController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Client{ID: 1, TrainerID: 1, Name: "Kim Minsoo"}, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Client")).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.PUT("/clients/:id", controller.UpdateClient)

	body, _ := json.Marshal(map[string]interface{}{
		"name":   "Kim Minsu",
		"gender": "male",
		"phone":  "010-1234-5678",
	})
	req := httptest.NewRequest("PUT", "/clients/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Kim Minsu", data["name"])

	mockRepo.AssertExpectations(t)
}

func TestDeleteClient(t *testing.T) {
	controller, mockRepo := setupClientController()
	mockRepo.On("FindByID", uint(1)).Return(&models.Client{ID: 1, TrainerID: 1}, nil)
	mockRepo.On("Delete", uint(1)).Return(nil)

	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.DELETE("/clients/:id", controller.DeleteClient)

	req := httptest.NewRequest("DELETE", "/clients/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
