package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(auth.JWTAuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/search", customerController.Search)
		customers.POST("/import", customerController.Import)
		customers.GET("/:id", customerController.Get)
		customers.PUT("/:id", customerController.Update)
	}
}
