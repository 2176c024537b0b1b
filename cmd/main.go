package main

import (
	"github.com/CristianHourcade/Piria-sub000/internal/handler"
	mid "github.com/CristianHourcade/Piria-sub000/internal/middleware"
	"github.com/CristianHourcade/Piria-sub000/internal/repository"
	"github.com/CristianHourcade/Piria-sub000/pkg/config"
	"github.com/CristianHourcade/Piria-sub000/pkg/database"
	"github.com/CristianHourcade/Piria-sub000/pkg/jwtutil"
	"github.com/CristianHourcade/Piria-sub000/pkg/logger"
	"github.com/CristianHourcade/Piria-sub000/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting agency-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Connect to the database
	db, err := database.Connect(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Repositories
	clients := repository.NewClientRepository(db)
	tasks := repository.NewTaskRepository(db)
	projects := repository.NewProjectRepository(db)
	accounts := repository.NewAccountRepository(db)
	expenses := repository.NewExpenseRepository(db)
	incomes := repository.NewIncomeRepository(db)
	leads := repository.NewLeadRepository(db)
	templates := repository.NewTemplateRepository(db)
	users := repository.NewUserRepository(db)

	// Handlers
	clientHandler := handler.NewClientHandler(clients)
	taskHandler := handler.NewTaskHandler(tasks, users)
	projectHandler := handler.NewProjectHandler(projects)
	financeHandler := handler.NewFinanceHandler(accounts, expenses, incomes)
	leadHandler := handler.NewLeadHandler(leads)
	templateHandler := handler.NewTemplateHandler(templates)
	userHandler := handler.NewUserHandler(users)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Client API routes
	clientAPI := e.Group("/api/clients", mid.AuthMiddleware)
	clientAPI.GET("", clientHandler.List)
	clientAPI.GET("/:id", clientHandler.Get)
	clientAPI.POST("", clientHandler.Create)
	clientAPI.PUT("/:id", clientHandler.Update)
	clientAPI.PATCH("/:id/status", clientHandler.SetStatus)
	clientAPI.DELETE("/:id", clientHandler.Delete)

	// Task API routes
	taskAPI := e.Group("/api/tasks", mid.AuthMiddleware)
	taskAPI.GET("", taskHandler.List)
	taskAPI.GET("/:id", taskHandler.Get)
	taskAPI.POST("", taskHandler.Create)
	taskAPI.PUT("/:id", taskHandler.Update)
	taskAPI.PATCH("/:id/status", taskHandler.SetStatus)
	taskAPI.DELETE("/:id", taskHandler.Delete)

	// Project API routes
	projectAPI := e.Group("/api/projects", mid.AuthMiddleware)
	projectAPI.GET("", projectHandler.List)
	projectAPI.GET("/:id", projectHandler.Get)
	projectAPI.POST("", projectHandler.Create)
	projectAPI.PUT("/:id", projectHandler.Update)
	projectAPI.PATCH("/:id/status", projectHandler.SetStatus)
	projectAPI.DELETE("/:id", projectHandler.Delete)

	// Finance API routes
	accountAPI := e.Group("/api/accounts", mid.AuthMiddleware)
	accountAPI.GET("", financeHandler.ListAccounts)
	accountAPI.POST("", financeHandler.CreateAccount)
	accountAPI.PUT("/:id", financeHandler.UpdateAccount)
	accountAPI.DELETE("/:id", financeHandler.DeleteAccount)

	expenseAPI := e.Group("/api/expenses", mid.AuthMiddleware)
	expenseAPI.GET("", financeHandler.ListExpenses)
	expenseAPI.POST("", financeHandler.CreateExpense)
	expenseAPI.PUT("/:id", financeHandler.UpdateExpense)
	expenseAPI.DELETE("/:id", financeHandler.DeleteExpense)

	incomeAPI := e.Group("/api/incomes", mid.AuthMiddleware)
	incomeAPI.GET("", financeHandler.ListIncomes)
	incomeAPI.POST("", financeHandler.CreateIncome)
	incomeAPI.PUT("/:id", financeHandler.UpdateIncome)
	incomeAPI.DELETE("/:id", financeHandler.DeleteIncome)

	// Lead API routes
	leadAPI := e.Group("/api/leads", mid.AuthMiddleware)
	leadAPI.GET("", leadHandler.List)
	leadAPI.GET("/:id", leadHandler.Get)
	leadAPI.POST("", leadHandler.Create)
	leadAPI.PUT("/:id", leadHandler.Update)
	leadAPI.PATCH("/:id/status", leadHandler.SetStatus)
	leadAPI.DELETE("/:id", leadHandler.Delete)

	// Task template API routes
	templateAPI := e.Group("/api/templates", mid.AuthMiddleware)
	templateAPI.GET("", templateHandler.List)
	templateAPI.GET("/:id", templateHandler.Get)
	templateAPI.POST("", templateHandler.Create)
	templateAPI.PUT("/:id", templateHandler.Update)
	templateAPI.DELETE("/:id", templateHandler.Delete)

	// User lookup API routes
	userAPI := e.Group("/api/users", mid.AuthMiddleware)
	userAPI.GET("", userHandler.List)
	userAPI.GET("/lookup", userHandler.Lookup)
	userAPI.GET("/:id", userHandler.Get)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
