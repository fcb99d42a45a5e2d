package main

import (
	"net/http"

	"geniusinvert/config"
	"geniusinvert/handlers"
	"geniusinvert/helper"
	"geniusinvert/logger"
	"geniusinvert/middleware"
	"geniusinvert/repositories"
	"geniusinvert/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	env := config.GetEnv("APP_ENV", "development")
	logger.Init(env)

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(db)
	versionRepo := repositories.NewArticleVersionRepository(db)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, versionRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	apiHandler := handlers.NewAPIHandler(articleService, httpHelper)

	// Setup router
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())
	router.LoadHTMLGlob("templates/*.html")

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Web routes (localized HTML)
	web := router.Group("/")
	web.Use(middleware.Locale())
	{
		web.GET("", articleHandler.Index)
		web.GET("articles", articleHandler.ListArticles)
		web.GET("article/new", articleHandler.NewArticleForm)
		web.POST("article/new", articleHandler.CreateArticle)
		web.GET("article/:id", articleHandler.ViewArticle)
		web.GET("article/:id/edit", articleHandler.EditArticleForm)
		web.POST("article/:id/edit", articleHandler.UpdateArticle)
	}

	// JSON API routes
	api := router.Group("/api")
	{
		api.GET("/articles", apiHandler.ListArticles)
		api.GET("/articles/:id", apiHandler.GetArticle)
		api.POST("/articles", apiHandler.CreateArticle)
	}

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Info().Str("port", port).Msg("Server starting")
	log.Fatal().Err(http.ListenAndServe(":"+port, router)).Msg("Server stopped")
}
