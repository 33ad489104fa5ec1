package server

import (
	"net/http"
	"time"

	_ "chalee-api/docs"
	"chalee-api/internal/config"
	"chalee-api/internal/middleware"
	"chalee-api/internal/presentation/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health       *handlers.HealthHandler
	Posts        *handlers.PostHandler
	Repositories *handlers.RepositoryHandler
}

// NewRouter builds the gin engine shared by the local server and the Lambda entrypoint
func NewRouter(cfg *config.Config, h Handlers, logger *zap.Logger) *gin.Engine {
	// JSON bodies with fields outside the request DTO are rejected
	binding.EnableDecoderDisallowUnknownFields = true

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		github := api.Group("/github")
		{
			github.GET("/users/:username/repos", h.Repositories.ListUserRepositories)
			github.GET("/repos/:username/:repo", h.Repositories.GetRepository)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", h.Posts.CreatePost)
			posts.GET("", h.Posts.ListPosts)
			posts.GET("/stats", h.Posts.GetPostStats)
			posts.GET("/slug/:slug", h.Posts.GetPostBySlug)
			posts.GET("/:id", h.Posts.GetPost)
			posts.PUT("/:id", h.Posts.UpdatePost)
			posts.PATCH("/:id/publish", h.Posts.PublishPost)
			posts.PATCH("/:id/unpublish", h.Posts.UnpublishPost)
			posts.DELETE("/:id", h.Posts.DeletePost)
		}
	}

	// Swagger documentation
	if !cfg.IsProduction() {
		router.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			StatusCode: http.StatusNotFound,
			Error:      "not_found",
			Message:    "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
			RequestID:  middleware.GetRequestID(c),
		})
	})

	return router
}

// corsConfig reflects any origin with credentials unless an allow list is configured
func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
