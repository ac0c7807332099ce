package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// RegisterLedgerRoutes registra as rotas do módulo financeiro
func RegisterLedgerRoutes(r *gin.RouterGroup, ledgerController *controller.LedgerController) {
	financial := r.Group("/financial")
	financial.Use(auth.JWTAuthMiddleware())
	{
		financial.POST("/entries", ledgerController.CreateEntry)
		financial.GET("/entries", ledgerController.ListEntries)
		financial.GET("/summary", ledgerController.Summary)
		financial.POST("/export", ledgerController.Export)
		financial.POST("/entries/:id/settle", ledgerController.Settle)
		financial.GET("/entries/:id/reminder", ledgerController.Reminder)
	}
}
