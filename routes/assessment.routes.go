package routes

import (
	"fitmate/internal/controllers"
	"fitmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAssessmentRoutes(router *gin.Engine, assessmentController *controllers.AssessmentController) {
	assessmentRoutes := router.Group("/assessments")
	assessmentRoutes.Use(middleware.AuthMiddleware())
	{
		assessmentRoutes.POST("/", assessmentController.CreateAssessment)
		assessmentRoutes.GET("/:id", assessmentController.GetAssessmentByID)
		assessmentRoutes.PUT("/:id", assessmentController.UpdateAssessment)
		assessmentRoutes.DELETE("/:id", assessmentController.DeleteAssessment)

		assessmentRoutes.GET("/:id/risk", assessmentController.GetAssessmentRiskReport)
		assessmentRoutes.GET("/:id/percentiles", assessmentController.GetAssessmentPercentiles)

		assessmentRoutes.GET("/client/:client_id", assessmentController.GetClientAssessments)
	}
}
