package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// RegisterOrderRoutes registra as rotas do módulo de pedidos
func RegisterOrderRoutes(r *gin.RouterGroup, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	orders.Use(auth.JWTAuthMiddleware())
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.POST("/status", orderController.BulkStatus)
		orders.GET("/:id", orderController.Get)
	}
}
