package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Optional Redis-backed cache for the list endpoints
	cacheConfig := config.LoadCacheConfig()
	var listCache *services.ListCache
	if cacheConfig.RedisURL != "" {
		var err error
		listCache, err = services.NewListCache(cacheConfig.RedisURL, cacheConfig.TTL)
		if err != nil {
			log.Printf("List caching disabled: %v", err)
			listCache = nil
		}
	}

	// Repositories
	todoRepo := repository.GetTodoRepo(utils.MongoClient)
	projectRepo := repository.GetProjectRepo(utils.MongoClient)
	habitRepo := repository.GetHabitRepo(utils.MongoClient)
	categoryRepo := repository.GetHabitCategoryRepo(utils.MongoClient)
	wishlistRepo := repository.GetWishlistRepo(utils.MongoClient)
	accountBookRepo := repository.GetAccountBookRepo(utils.MongoClient)

	// Services
	todoService := usecase.NewTodoService(todoRepo, projectRepo)
	projectService := usecase.NewProjectService(projectRepo, todoRepo, habitRepo)
	habitService := usecase.NewHabitService(habitRepo, categoryRepo, projectRepo)
	categoryService := usecase.NewHabitCategoryService(categoryRepo, habitRepo)
	wishlistService := usecase.NewWishlistService(wishlistRepo)
	accountBookService := usecase.NewAccountBookService(accountBookRepo)

	// Handlers
	todoHandler := handler.NewTodoHandler(todoService, listCache)
	projectHandler := handler.NewProjectHandler(projectService, listCache)
	habitHandler := handler.NewHabitHandler(habitService, listCache)
	categoryHandler := handler.NewHabitCategoryHandler(categoryService, listCache)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	accountBookHandler := handler.NewAccountBookHandler(accountBookService)
	healthHandler := handler.NewHealthHandler(utils.MongoClient, listCache)

	// Middleware chain
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		todos := api.Group("/todos")
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("", todoHandler.GetTodos)
			todos.GET("/:id", todoHandler.GetTodo)
			todos.PATCH("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/children", projectHandler.GetChildren)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.POST("/:id/status", projectHandler.ChangeStatus)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			projects.POST("/:id/items", projectHandler.AddItem)
			projects.PATCH("/:id/items/:itemId", projectHandler.UpdateItem)
			projects.DELETE("/:id/items/:itemId", projectHandler.RemoveItem)

			projects.POST("/:id/urls", projectHandler.AddURL)
			projects.PATCH("/:id/urls/:urlId", projectHandler.UpdateURL)
			projects.DELETE("/:id/urls/:urlId", projectHandler.RemoveURL)
		}

		habits := api.Group("/habits")
		{
			habits.POST("", habitHandler.CreateHabit)
			habits.GET("", habitHandler.GetHabits)
			habits.GET("/:id", habitHandler.GetHabit)
			habits.PATCH("/:id", habitHandler.UpdateHabit)
			habits.DELETE("/:id", habitHandler.DeleteHabit)
			habits.POST("/reset-completions", habitHandler.ResetCompletions)
			habits.POST("/reorder", habitHandler.ReorderHabits)
		}

		categories := api.Group("/habit-categories")
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PATCH("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.POST("", wishlistHandler.CreateWish)
			wishlist.GET("", wishlistHandler.GetWishes)
			wishlist.GET("/:id", wishlistHandler.GetWish)
			wishlist.PATCH("/:id", wishlistHandler.UpdateWish)
			wishlist.DELETE("/:id", wishlistHandler.DeleteWish)
		}

		accountBook := api.Group("/account-book")
		{
			accountBook.GET("", accountBookHandler.GetAccountBook)
			accountBook.PATCH("", accountBookHandler.UpdateAccountBook)
			accountBook.POST("/wish-items", accountBookHandler.AddWishItem)
			accountBook.PATCH("/wish-items/:itemId", accountBookHandler.UpdateWishItem)
			accountBook.DELETE("/wish-items/:itemId", accountBookHandler.RemoveWishItem)
		}
	}

	return router
}

func main() {
	dbConfig := config.LoadDatabaseConfig()
	db := utils.MongoClient.Database(dbConfig.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Printf("Failed to create indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
