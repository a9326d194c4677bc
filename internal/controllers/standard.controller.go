package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"fitmate/internal/models"
	"fitmate/internal/repository"
	"fitmate/internal/scoring"
	"fitmate/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StandardController struct {
	repo          repository.StandardRepository
	normativeRepo repository.NormativeRepository
	source        *repository.StandardsSource
	jobRepo       repository.RecalcJobRepository
	worker        *services.RecalcWorker
}

func NewStandardController(
	repo repository.StandardRepository,
	normativeRepo repository.NormativeRepository,
	source *repository.StandardsSource,
	jobRepo repository.RecalcJobRepository,
	worker *services.RecalcWorker,
) *StandardController {
	return &StandardController{
		repo:          repo,
		normativeRepo: normativeRepo,
		source:        source,
		jobRepo:       jobRepo,
		worker:        worker,
	}
}

// GetStandards godoc
// @Summary List scoring standards
// @Description List threshold rows, optionally filtered by test and gender
// @Tags standards
// @Produce json
// @Security BearerAuth
// @Param test query string false "Test name"
// @Param gender query string false "Gender"
// @Success 200 {object} map[string]interface{} "Standards retrieved successfully"
// @Router /standards [get]
func (sc *StandardController) GetStandards(c *gin.Context) {
	standards, err := sc.repo.FindAll(c.Query("test"), c.Query("gender"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve standards",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Standards retrieved successfully",
		"data":    standards,
	})
}

// CreateStandard godoc
// @Summary Create a scoring standard
// @Description Create a threshold row; cached lookups are invalidated
// @Tags standards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param standard body models.Standard true "Standard data"
// @Success 201 {object} map[string]interface{} "Standard created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /standards [post]
func (sc *StandardController) CreateStandard(c *gin.Context) {
	var standard models.Standard
	if err := c.ShouldBindJSON(&standard); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if !validStandard(&standard) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "direction must be 'higher' or 'lower' and age_min <= age_max",
		})
		return
	}

	if err := sc.repo.Create(&standard); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create standard",
			"error":   err.Error(),
		})
		return
	}
	sc.invalidate()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Standard created successfully",
		"data":    standard,
	})
}

// UpdateStandard godoc
// @Summary Update a scoring standard
// @Description Update a threshold row; cached lookups are invalidated
// @Tags standards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Standard ID"
// @Param standard body models.Standard true "Standard data"
// @Success 200 {object} map[string]interface{} "Standard updated successfully"
// @Failure 404 {object} map[string]interface{} "Standard not found"
// @Router /standards/{id} [put]
func (sc *StandardController) UpdateStandard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid standard ID",
			"error":   err.Error(),
		})
		return
	}

	standard, err := sc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Standard not found",
			"error":   "No standard exists with this ID",
		})
		return
	}

	if err := c.ShouldBindJSON(standard); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	standard.ID = uint(id)

	if !validStandard(standard) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "direction must be 'higher' or 'lower' and age_min <= age_max",
		})
		return
	}

	if err := sc.repo.Update(standard); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update standard",
			"error":   err.Error(),
		})
		return
	}
	sc.invalidate()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Standard updated successfully",
		"data":    standard,
	})
}

// DeleteStandard godoc
// @Summary Delete a scoring standard
// @Description Delete a threshold row; lookups fall back to the defaults
// @Tags standards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Standard ID"
// @Success 200 {object} map[string]interface{} "Standard deleted successfully"
// @Router /standards/{id} [delete]
func (sc *StandardController) DeleteStandard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid standard ID",
			"error":   err.Error(),
		})
		return
	}

	if err := sc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete standard",
			"error":   err.Error(),
		})
		return
	}
	sc.invalidate()

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Standard deleted successfully",
	})
}

// GetNormativeData godoc
// @Summary List normative population data
// @Tags standards
// @Produce json
// @Security BearerAuth
// @Param test query string false "Test name"
// @Param gender query string false "Gender"
// @Success 200 {object} map[string]interface{} "Normative data retrieved successfully"
// @Router /standards/normative [get]
func (sc *StandardController) GetNormativeData(c *gin.Context) {
	data, err := sc.normativeRepo.FindAll(c.Query("test"), c.Query("gender"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve normative data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Normative data retrieved successfully",
		"data":    data,
	})
}

// RecalculateAll godoc
// @Summary Recalculate all assessments
// @Description Start a batch recalculation job over every stored assessment
// @Tags standards
// @Produce json
// @Security BearerAuth
// @Success 202 {object} map[string]interface{} "Recalculation job started"
// @Failure 503 {object} map[string]interface{} "Worker unavailable"
// @Router /standards/recalculate [post]
func (sc *StandardController) RecalculateAll(c *gin.Context) {
	userID, _ := c.Get("user_id")

	job := &models.RecalcJob{
		ID:          uuid.New().String(),
		RequestedBy: userID.(uint),
		Status:      models.JobStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := sc.jobRepo.SaveJob(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create recalculation job",
			"error":   err.Error(),
		})
		return
	}

	if err := sc.worker.EnqueueJob(job.ID); err != nil {
		log.Printf("Failed to enqueue recalc job %s: %v", job.ID, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Recalculation worker unavailable",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "success",
		"message": "Recalculation job started",
		"data":    job,
	})
}

// GetRecalcJob godoc
// @Summary Get a recalculation job
// @Tags standards
// @Produce json
// @Security BearerAuth
// @Param job_id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Job retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /standards/recalculate/{job_id} [get]
func (sc *StandardController) GetRecalcJob(c *gin.Context) {
	job, err := sc.jobRepo.GetJobByID(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No recalculation job exists with this ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Job retrieved successfully",
		"data":    job,
	})
}

func (sc *StandardController) invalidate() {
	if err := sc.source.Invalidate(); err != nil {
		log.Printf("Failed to invalidate standards cache: %v", err)
	}
}

func validStandard(s *models.Standard) bool {
	if s.Direction == "" {
		s.Direction = string(scoring.HigherIsBetter)
	}
	if s.Direction != string(scoring.HigherIsBetter) && s.Direction != string(scoring.LowerIsBetter) {
		return false
	}
	return s.AgeMin >= 0 && s.AgeMin <= s.AgeMax
}
