package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/vrocha/aquagas-api/docs"
	"github.com/vrocha/aquagas-api/internal/adapter/api/controller"
	"github.com/vrocha/aquagas-api/internal/adapter/api/route"
	"github.com/vrocha/aquagas-api/internal/adapter/repository"
	"github.com/vrocha/aquagas-api/internal/domain/user"
	"github.com/vrocha/aquagas-api/internal/infrastructure/database"
	"github.com/vrocha/aquagas-api/pkg/auth"
	"github.com/vrocha/aquagas-api/pkg/logger"
	"github.com/vrocha/aquagas-api/pkg/marketing"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger

	authController      *controller.AuthController
	customerController  *controller.CustomerController
	productController   *controller.ProductController
	agentController     *controller.AgentController
	orderController     *controller.OrderController
	ledgerController    *controller.LedgerController
	trackingController  *controller.TrackingController
	marketingController *controller.MarketingController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Criar serviço de tokens
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// O compositor é opcional: sem a chave da API, as rotas de
	// marketing respondem 503 e o resto do painel segue normal
	composer, err := marketing.NewComposer(log, chatRepo)
	if err != nil {
		log.Warn("compositor de marketing desabilitado", "reason", err.Error())
		composer = nil
	}

	// Criar controllers
	app := &App{
		db:     db,
		logger: log,

		authController:      controller.NewAuthController(userRepo, jwtService, log),
		customerController:  controller.NewCustomerController(customerRepo, log),
		productController:   controller.NewProductController(productRepo, log),
		agentController:     controller.NewAgentController(agentRepo, log),
		orderController:     controller.NewOrderController(orderRepo, ledgerRepo, log),
		ledgerController:    controller.NewLedgerController(ledgerRepo, customerRepo, log),
		trackingController:  controller.NewTrackingController(orderRepo, log),
		marketingController: controller.NewMarketingController(composer, log),
	}

	if err := app.seedAdmin(userRepo); err != nil {
		return nil, err
	}

	app.setupRouter()

	return app, nil
}

// seedAdmin cria o operador administrador inicial quando a tabela de
// usuários está vazia. Sem cadastro aberto: novos operadores entram
// por esse mesmo caminho ou direto no banco.
func (a *App) seedAdmin(userRepo user.Repository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		a.logger.Warn("nenhum operador cadastrado e ADMIN_EMAIL/ADMIN_PASSWORD não definidos")
		return nil
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrador"
	}

	admin, err := user.NewUser(name, email, password, user.RoleAdmin)
	if err != nil {
		return err
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	a.logger.Info("operador administrador criado", "email", email)
	return nil
}

// setupRouter configura o router, os middlewares globais e as rotas
func (a *App) setupRouter() {
	router := gin.Default()
	router.Use(gin.Recovery())

	// Configurar CORS para o painel web
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupAuthRoutes(api, a.authController)
	route.RegisterTrackingRoutes(api, a.trackingController)
	route.RegisterCustomerRoutes(api, a.customerController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterAgentRoutes(api, a.agentController)
	route.RegisterOrderRoutes(api, a.orderController)
	route.RegisterLedgerRoutes(api, a.ledgerController)
	route.RegisterMarketingRoutes(api, a.marketingController)

	a.router = router
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
