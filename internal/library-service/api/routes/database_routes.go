package routes

import (
	"Library_Demo_Service/internal/library-service/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpDatabaseRoutes(r *gin.Engine, handler handler.DatabaseHandler) {
	databaseRoutes := r.Group("/api/database")
	databaseRoutes.GET("/test-connection", handler.TestConnection())
	databaseRoutes.GET("/test-mybatis-annotation", handler.TestAnnotationMapping())
	databaseRoutes.GET("/test-mybatis-xml", handler.TestXMLMapping())
	databaseRoutes.GET("/version", handler.GetDatabaseVersion())
	databaseRoutes.GET("/pool-info", handler.GetPoolInfo())
}
