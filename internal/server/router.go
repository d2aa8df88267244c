package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"quizkit/internal/page"
	"quizkit/internal/response"
	"quizkit/internal/validator"
)

const stylesheetURL = "/assets/" + page.StylesheetName

// Handler builds the gin engine serving the quiz page, assets, and JSON API.
func (s *Server) Handler() (http.Handler, error) {
	mode := s.cfg.GinMode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	validator.Setup()

	assets, err := page.AssetsFS()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(response.RequestIDMiddleware())
	router.Use(requestLogger(s.log))

	router.GET("/", s.handleIndex)
	router.POST("/submit", s.handleSubmit)
	router.StaticFS("/assets", http.FS(assets))
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(cors.New(corsConfig(s.cfg.AllowedOrigins)))
	{
		api.GET("/quiz", s.handleQuiz)
		api.POST("/quiz/evaluate", s.handleEvaluate)
		api.POST("/quiz/reload", s.handleReload)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})
	return router, nil
}

// corsConfig restricts to the allowed origins, or allows all when none are configured.
func corsConfig(allowedOrigins []string) cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// requestLogger logs one line per request.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("request_id", response.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
