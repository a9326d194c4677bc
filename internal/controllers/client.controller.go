package controllers

import (
	"net/http"
	"strconv"

	"fitmate/internal/models"
	"fitmate/internal/repository"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	repo repository.ClientRepository
}

func NewClientController(repo repository.ClientRepository) *ClientController {
	return &ClientController{repo: repo}
}

// CreateClient godoc
// @Summary Register a client
// @Description Register a new client for the authenticated trainer
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body models.Client true "Client data"
// @Success 201 {object} map[string]interface{} "Client created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if client.Gender != models.GenderMale && client.Gender != models.GenderFemale {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "gender must be 'male' or 'female'",
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
	client.TrainerID = userID.(uint)

	if err := cc.repo.Create(&client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Client created successfully",
		"data":    client,
	})
}

// GetClients godoc
// @Summary List clients
// @Description List the authenticated trainer's clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of clients"
// @Success 200 {object} map[string]interface{} "Clients retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /clients [get]
func (cc *ClientController) GetClients(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	clients, err := cc.repo.FindAllByTrainerID(userID.(uint), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve clients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Clients retrieved successfully",
		"data":    clients,
	})
}

// GetClientByID godoc
// @Summary Get a client
// @Description Retrieve one of the authenticated trainer's clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Client retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [get]
func (cc *ClientController) GetClientByID(c *gin.Context) {
	client, ok := cc.ownedClient(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client retrieved successfully",
		"data":    client,
	})
}

// UpdateClient godoc
// @Summary Update a client
// @Description Update one of the authenticated trainer's clients
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param client body models.Client true "Client data"
// @Success 200 {object} map[string]interface{} "Client updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [put]
func (cc *ClientController) UpdateClient(c *gin.Context) {
	client, ok := cc.ownedClient(c)
	if !ok {
		return
	}

	var update models.Client
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	client.Name = update.Name
	client.Gender = update.Gender
	client.BirthDate = update.BirthDate
	client.Phone = update.Phone
	client.Notes = update.Notes

	if err := cc.repo.Update(client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client updated successfully",
		"data":    client,
	})
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Delete one of the authenticated trainer's clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Client deleted successfully"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Router /clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	client, ok := cc.ownedClient(c)
	if !ok {
		return
	}

	if err := cc.repo.Delete(client.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete client",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Client deleted successfully",
	})
}

// ownedClient loads the path client and verifies it belongs to the
// authenticated trainer, writing the error response itself on failure.
func (cc *ClientController) ownedClient(c *gin.Context) (*models.Client, bool) {
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
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
		return nil, false
	}

	client, err := cc.repo.FindByID(uint(id))
	if err != nil || client.TrainerID != userID.(uint) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Client not found",
			"error":   "No client exists with this ID for this trainer",
		})
		return nil, false
	}

	return client, true
}
