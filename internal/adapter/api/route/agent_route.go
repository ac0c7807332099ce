package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// RegisterAgentRoutes registra as rotas do módulo de entregadores
func RegisterAgentRoutes(r *gin.RouterGroup, agentController *controller.AgentController) {
	agents := r.Group("/agents")
	agents.Use(auth.JWTAuthMiddleware())
	{
		agents.POST("", agentController.Create)
		agents.GET("", agentController.List)
		agents.GET("/active", agentController.Active)
		agents.GET("/:id", agentController.Get)
		agents.PUT("/:id", agentController.Update)
		agents.PATCH("/:id/status", agentController.UpdateStatus)
	}
}
