package routes

import (
	"log"
	"net/http"

	_ "nyumbanii_maintenance/docs"
	"nyumbanii_maintenance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the /v1 API serves.
type Handlers struct {
	Requests  *handlers.RequestHandler
	Approvals *handlers.ApprovalHandler
	Budget    *handlers.BudgetHandler
	Settings  *handlers.SettingsHandler
}

// NewRouter builds the gin engine. Callers own the http.Server around it.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMaintenanceRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
