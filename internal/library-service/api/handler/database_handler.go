package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"Library_Demo_Service/internal/library-service/api/dto/response"
	"Library_Demo_Service/internal/library-service/model"
	"Library_Demo_Service/internal/library-service/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const queryFailedPrefix = "Query failed: "

type DatabaseHandler interface {
	TestConnection() gin.HandlerFunc
	TestAnnotationMapping() gin.HandlerFunc
	TestXMLMapping() gin.HandlerFunc
	GetDatabaseVersion() gin.HandlerFunc
	GetPoolInfo() gin.HandlerFunc
}

type databaseHandler struct {
	logger          Logger
	databaseService service.DatabaseService
}

// TestConnection always answers 200; failure is reported in the body.
func (d *databaseHandler) TestConnection() gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := d.databaseService.TestConnection(c.Request.Context())
		if err != nil {
			d.logger.LoggingError(c, fmt.Errorf("DatabaseHandler.TestConnection: %w", err), "database connection test failed", zap.WarnLevel)
		}
		c.JSON(http.StatusOK, res)
	}
}

func (d *databaseHandler) TestAnnotationMapping() gin.HandlerFunc {
	return d.connectionResult("DatabaseHandler.TestAnnotationMapping", d.databaseService.TestAnnotationMapping)
}

func (d *databaseHandler) TestXMLMapping() gin.HandlerFunc {
	return d.connectionResult("DatabaseHandler.TestXMLMapping", d.databaseService.TestXMLMapping)
}

func (d *databaseHandler) GetDatabaseVersion() gin.HandlerFunc {
	return d.connectionResult("DatabaseHandler.GetDatabaseVersion", d.databaseService.GetDatabaseVersion)
}

func (d *databaseHandler) connectionResult(op string, query func(ctx context.Context) (model.ConnectionResult, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := query(c.Request.Context())
		if err != nil {
			d.logger.LoggingError(c, fmt.Errorf("%s: %w", op, err), "failed to run diagnostic query", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Success: false,
				Message: queryFailedPrefix + rootCause(err).Error(),
			})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// rootCause strips the layer prefixes added on the way up so clients only see
// the driver or mapper error.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func (d *databaseHandler) GetPoolInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, d.databaseService.GetPoolInfo())
	}
}

func NewDatabaseHandler(logger *zap.Logger, databaseService service.DatabaseService) DatabaseHandler {
	return &databaseHandler{
		logger:          NewLogger(logger),
		databaseService: databaseService,
	}
}
