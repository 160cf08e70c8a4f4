package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	companyUseCase "employeeservice/internal/domain/usecase/company"
	departmentUseCase "employeeservice/internal/domain/usecase/department"
	employeeUseCase "employeeservice/internal/domain/usecase/employee"

	"employeeservice/internal/infrastructure/adapter/api/dto"
	"employeeservice/internal/infrastructure/adapter/api/handler"
	"employeeservice/internal/infrastructure/adapter/api/routes"
	"employeeservice/internal/infrastructure/adapter/database"
	"employeeservice/internal/infrastructure/adapter/logger"
	"employeeservice/internal/infrastructure/adapter/repository"
	"employeeservice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
	}

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer conn.Close()

	// Run migrations
	if err := conn.RunMigrations(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories for the single-entity flows
	companyRepo := repository.NewCompanyRepository(conn.DB, appLogger)
	departmentRepo := repository.NewDepartmentRepository(conn.DB, appLogger)

	// Unit of work factory for the multi-repository employee flows
	uowFactory := database.NewUnitOfWorkFactory(conn.DB, appLogger)

	// Initialize use cases
	companyUseCaseImpl := companyUseCase.NewCompanyUseCase(companyRepo, appLogger)
	departmentUseCaseImpl := departmentUseCase.NewDepartmentUseCase(departmentRepo, companyRepo, appLogger)
	employeeUseCaseImpl := employeeUseCase.NewEmployeeUseCase(uowFactory, appLogger)

	// Initialize API handlers
	companyHandler := handler.NewCompanyHandler(companyUseCaseImpl, appLogger)
	departmentHandler := handler.NewDepartmentHandler(departmentUseCaseImpl, appLogger)
	employeeHandler := handler.NewEmployeeHandler(employeeUseCaseImpl, appLogger)

	// Register custom request validations
	if err := dto.RegisterCustomValidations(); err != nil {
		appLogger.Error("Failed to register validations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()

	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, companyHandler, departmentHandler, employeeHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if err := appLogger.Flush(); err != nil {
		log.Printf("Failed to flush logger: %v", err)
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or ES_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or ES_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or ES_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or ES_DB_NAME environment variable)")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
