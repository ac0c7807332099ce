package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// RegisterMarketingRoutes registra as rotas do compositor de marketing
func RegisterMarketingRoutes(r *gin.RouterGroup, marketingController *controller.MarketingController) {
	marketing := r.Group("/marketing")
	marketing.Use(auth.JWTAuthMiddleware())
	{
		marketing.POST("/compose", marketingController.Compose)
		marketing.GET("/history", marketingController.History)
	}
}
