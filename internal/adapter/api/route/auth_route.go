package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/pkg/auth"
)

// SetupAuthRoutes configura as rotas de autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		// Rota para obter informações do operador logado (requer autenticação)
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
