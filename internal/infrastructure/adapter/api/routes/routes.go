package routes

import (
	"net/http"

	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/infrastructure/adapter/api/handler"
	"employeeservice/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	companyHandler *handler.CompanyHandler,
	departmentHandler *handler.DepartmentHandler,
	employeeHandler *handler.EmployeeHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		companyRoutes := api.Group("/company")
		{
			companyRoutes.POST("", companyHandler.Add)
			companyRoutes.GET("/:id", companyHandler.Get)
			companyRoutes.PATCH("/:id", companyHandler.Update)
			companyRoutes.DELETE("/:id", companyHandler.Delete)
		}

		departmentRoutes := api.Group("/department")
		{
			departmentRoutes.POST("", departmentHandler.Add)
			departmentRoutes.GET("/:id", departmentHandler.Get)
			departmentRoutes.PATCH("/:id", departmentHandler.Update)
			departmentRoutes.DELETE("/:id", departmentHandler.Delete)
		}

		employeeRoutes := api.Group("/employee")
		{
			employeeRoutes.POST("", employeeHandler.Add)
			employeeRoutes.GET("", employeeHandler.GetAll)
			employeeRoutes.GET("/:id", employeeHandler.Get)
			employeeRoutes.GET("/company/:id", employeeHandler.GetByCompany)
			employeeRoutes.GET("/department/:id", employeeHandler.GetByDepartment)
			employeeRoutes.PATCH("/:id", employeeHandler.Update)
			employeeRoutes.DELETE("/:id", employeeHandler.Delete)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters, the request id must exist before anything logs it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
