package routes

import (
	"Library_Demo_Service/internal/library-service/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpWelcomeRoutes(r *gin.Engine, welcomeHandler handler.WelcomeHandler, healthHandler handler.HealthHandler) {
	r.GET("/", welcomeHandler.Index())
	r.GET("/api/welcome", welcomeHandler.Welcome())
	r.GET("/health", welcomeHandler.Health())
	r.GET("/actuator/health", healthHandler.DataSourceHealth())
}
