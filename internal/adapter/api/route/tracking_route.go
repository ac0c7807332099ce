package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
)

// RegisterTrackingRoutes registra a rota pública de acompanhamento de
// pedido. Sem autenticação: o cliente final acessa pelo link recebido.
func RegisterTrackingRoutes(r *gin.RouterGroup, trackingController *controller.TrackingController) {
	r.GET("/tracking/:id", trackingController.Track)
}
