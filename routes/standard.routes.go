package routes

import (
	"fitmate/internal/controllers"
	"fitmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterStandardRoutes(router *gin.Engine, standardController *controllers.StandardController) {
	standardRoutes := router.Group("/standards")
	standardRoutes.Use(middleware.AuthMiddleware())
	{
		standardRoutes.GET("/", standardController.GetStandards)
		standardRoutes.GET("/normative", standardController.GetNormativeData)

		adminRoutes := standardRoutes.Group("")
		adminRoutes.Use(middleware.RequireAdmin())
		{
			adminRoutes.POST("/", standardController.CreateStandard)
			adminRoutes.PUT("/:id", standardController.UpdateStandard)
			adminRoutes.DELETE("/:id", standardController.DeleteStandard)

			adminRoutes.POST("/recalculate", standardController.RecalculateAll)
			adminRoutes.GET("/recalculate/:job_id", standardController.GetRecalcJob)
		}
	}
}
