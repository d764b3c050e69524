package handler

import (
	"embed"
	"html/template"
	"net/http"

	"Library_Demo_Service/internal/library-service/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the HTML pages rendered by WelcomeHandler. Install it with
// gin.Engine.SetHTMLTemplate.
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const indexTemplate = "index.html"

type WelcomeHandler interface {
	Index() gin.HandlerFunc
	Welcome() gin.HandlerFunc
	Health() gin.HandlerFunc
}

type welcomeHandler struct {
	welcomeService service.WelcomeService
}

func (w *welcomeHandler) Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := w.welcomeService.IndexPage()
		c.HTML(http.StatusOK, indexTemplate, gin.H{
			"appName": page.AppName,
			"message": page.Message,
		})
	}
}

func (w *welcomeHandler) Welcome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, w.welcomeService.Welcome())
	}
}

// Health is the liveness check. It does not touch the database.
func (w *welcomeHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func NewWelcomeHandler(welcomeService service.WelcomeService) WelcomeHandler {
	return &welcomeHandler{
		welcomeService: welcomeService,
	}
}
