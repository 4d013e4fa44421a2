package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pin-genius/cmd/api/handlers"
	"pin-genius/cmd/api/middleware"
	_ "pin-genius/docs"
)

// Deps 는 라우터가 사용하는 의존성이다. AILogs 는 mongo 가 설정되지 않았으면 nil 이다.
type Deps struct {
	Pins           handlers.PinService
	AILogs         handlers.AILogFinder
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.CORS(deps.AllowedOrigins))
	r.SetHTMLTemplate(handlers.LoadTemplates())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		snap := deps.Pins.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"state":       snap.State,
			"ai_log_repo": deps.AILogs != nil,
		})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTML form
	r.GET("/", handlers.IndexHandler(deps.Pins))
	r.POST("/generate", handlers.GenerateFormHandler(deps.Pins))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/vocabularies", handlers.ListVocabulariesHandler())
		api.POST("/pins", handlers.CreatePinHandler(deps.Pins))
		api.GET("/pins/latest", handlers.GetLatestPinHandler(deps.Pins))
		api.GET("/pins/:id/logs", handlers.ListPinLogsHandler(deps.AILogs))
	}

	return r
}
