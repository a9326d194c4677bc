package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"fitmate/internal/models"
	"fitmate/internal/norms"
	"fitmate/internal/repository"
	"fitmate/internal/scoring"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	repo       repository.AssessmentRepository
	clientRepo repository.ClientRepository
	engine     *scoring.Engine
	standards  scoring.StandardsSource
	norms      norms.Source
}

func NewAssessmentController(
	repo repository.AssessmentRepository,
	clientRepo repository.ClientRepository,
	engine *scoring.Engine,
	standards scoring.StandardsSource,
	normsSource norms.Source,
) *AssessmentController {
	return &AssessmentController{
		repo:       repo,
		clientRepo: clientRepo,
		engine:     engine,
		standards:  standards,
		norms:      normsSource,
	}
}

// CreateAssessment godoc
// @Summary Record an assessment
// @Description Record a new assessment; scores are calculated before saving
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assessment body models.Assessment true "Assessment data"
// @Success 201 {object} map[string]interface{} "Assessment created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /assessments [post]
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	var assessment models.Assessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	client, err := ac.clientRepo.FindByID(assessment.ClientID)
	if err != nil || client.TrainerID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with this ID for this trainer",
		})
		return
	}

	assessment.TrainerID = userID.(uint)
	assessment.Client = *client
	if assessment.AssessedAt.IsZero() {
		assessment.AssessedAt = time.Now()
	}

	if !ac.calculate(c, &assessment) {
		return
	}

	if err := ac.repo.Save(&assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Assessment created successfully",
		"data":    assessment,
	})
}

// UpdateAssessment godoc
// @Summary Update an assessment
// @Description Update raw measurements; all scores are recalculated
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param assessment body models.Assessment true "Assessment data"
// @Success 200 {object} map[string]interface{} "Assessment updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessments/{id} [put]
func (ac *AssessmentController) UpdateAssessment(c *gin.Context) {
	assessment, ok := ac.ownedAssessment(c)
	if !ok {
		return
	}

	id, trainerID, clientID := assessment.ID, assessment.TrainerID, assessment.ClientID
	if err := c.ShouldBindJSON(assessment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	// Identity fields are not editable through this endpoint.
	assessment.ID = id
	assessment.TrainerID = trainerID
	assessment.ClientID = clientID

	if !ac.calculate(c, assessment) {
		return
	}

	if err := ac.repo.Update(assessment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessment updated successfully",
		"data":    assessment,
	})
}

// GetAssessmentByID godoc
// @Summary Get an assessment
// @Description Retrieve an assessment with its computed scores and risk report
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Assessment retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessments/{id} [get]
func (ac *AssessmentController) GetAssessmentByID(c *gin.Context) {
	assessment, ok := ac.ownedAssessment(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessment retrieved successfully",
		"data":    assessment,
	})
}

// GetClientAssessments godoc
// @Summary List a client's assessments
// @Description List assessments for one client, newest first
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param client_id path int true "Client ID"
// @Param limit query int false "Maximum number of assessments"
// @Success 200 {object} map[string]interface{} "Assessments retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /assessments/client/{client_id} [get]
func (ac *AssessmentController) GetClientAssessments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
		return
	}

	client, err := ac.clientRepo.FindByID(uint(clientID))
	if err != nil || client.TrainerID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with this ID for this trainer",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	assessments, err := ac.repo.FindByClientID(uint(clientID), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve assessments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessments retrieved successfully",
		"data":    assessments,
	})
}

// DeleteAssessment godoc
// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Assessment deleted successfully"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessments/{id} [delete]
func (ac *AssessmentController) DeleteAssessment(c *gin.Context) {
	assessment, ok := ac.ownedAssessment(c)
	if !ok {
		return
	}

	if err := ac.repo.Delete(assessment.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete assessment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assessment deleted successfully",
	})
}

// GetAssessmentPercentiles godoc
// @Summary Percentile ranks and performance age
// @Description Rank the assessment's raw values against normative population data
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Percentiles computed successfully"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessments/{id}/percentiles [get]
func (ac *AssessmentController) GetAssessmentPercentiles(c *gin.Context) {
	assessment, ok := ac.ownedAssessment(c)
	if !ok {
		return
	}

	gender := assessment.Client.Gender
	age := assessment.Client.AgeAt(assessment.AssessedAt)

	results := make(map[string]*norms.Result)
	for _, entry := range rawValues(assessment) {
		higher := true
		if bands, err := ac.standards.GetStandard(entry.test, gender, age, entry.variation); err == nil {
			higher = bands.Direction != scoring.LowerIsBetter
		}
		result, err := norms.Evaluate(ac.norms, entry.test, gender, age, entry.value, higher)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to compute percentiles",
				"error":   err.Error(),
			})
			return
		}
		results[entry.test] = result
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Percentiles computed successfully",
		"data":    results,
	})
}

// GetAssessmentRiskReport godoc
// @Summary Get the injury risk report
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} map[string]interface{} "Risk report retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /assessments/{id}/risk [get]
func (ac *AssessmentController) GetAssessmentRiskReport(c *gin.Context) {
	assessment, ok := ac.ownedAssessment(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Risk report retrieved successfully",
		"data":    assessment.RiskReport,
	})
}

// calculate runs the scoring engine and writes the error response itself
// when the inputs are rejected.
func (ac *AssessmentController) calculate(c *gin.Context, assessment *models.Assessment) bool {
	if err := ac.engine.CalculateScores(assessment); err != nil {
		var validationErr *scoring.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid assessment data",
				"error":   validationErr,
			})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to calculate scores",
			"error":   err.Error(),
		})
		return false
	}
	return true
}

func (ac *AssessmentController) ownedAssessment(c *gin.Context) (*models.Assessment, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assessment ID",
			"error":   err.Error(),
		})
		return nil, false
	}

	assessment, err := ac.repo.FindByID(uint(id))
	if err != nil || assessment.TrainerID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Assessment not found",
			"error":   "No assessment exists with this ID for this trainer",
		})
		return nil, false
	}

	return assessment, true
}

type rawValue struct {
	test      string
	variation string
	value     float64
}

// rawValues lists the measurements that have normative comparisons.
func rawValues(a *models.Assessment) []rawValue {
	var values []rawValue

	if a.PushUpCount != nil {
		variation := a.PushUpType
		if variation == "" {
			variation = scoring.PushUpVariationStandard
		}
		values = append(values, rawValue{scoring.TestPushUp, variation, float64(*a.PushUpCount)})
	}
	if a.BalanceLeftSec != nil && a.BalanceRightSec != nil {
		values = append(values, rawValue{scoring.TestSingleLegBalance, "", math.Min(*a.BalanceLeftSec, *a.BalanceRightSec)})
	}
	if a.CarryTotalSec != nil {
		values = append(values, rawValue{scoring.TestFarmerCarry, "", *a.CarryTotalSec})
	}
	if a.ToeTouchCm != nil {
		values = append(values, rawValue{scoring.TestToeTouch, "", *a.ToeTouchCm})
	}
	if a.StepHR1 != nil && a.StepHR2 != nil && a.StepHR3 != nil {
		if index, err := scoring.FitnessIndex(*a.StepHR1, *a.StepHR2, *a.StepHR3); err == nil {
			values = append(values, rawValue{scoring.TestHarvardStep, "", index})
		}
	}

	return values
}
