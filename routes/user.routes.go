package routes

import (
	"fitmate/internal/controllers"
	"fitmate/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", userController.Register)
		authRoutes.POST("/login", userController.Login)
	}
	authRoutes.GET("/me", middleware.AuthMiddleware(), userController.GetMe)
}
