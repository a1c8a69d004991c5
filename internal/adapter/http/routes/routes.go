package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"repairdesk/internal/adapter/http/handlers"
	repository2 "repairdesk/internal/adapter/persistence/repository"
	"repairdesk/internal/infrastructure/auth"
	"repairdesk/internal/infrastructure/database"
	"repairdesk/internal/infrastructure/payments"
	"repairdesk/internal/usecase"
	"repairdesk/internal/usecase/interfaces"
	"repairdesk/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

var router = gin.New()

const PORT = 8080

const sessionName = "repairdesk_session"

// Run will start the server
func Run() {
	setMiddlewares()

	router.SetHTMLTemplate(web.Templates())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	paymentRepo := repository2.NewTicketPaymentDynamoRepository(ddb)

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	var authGateway interfaces.IAuthGateway
	cognitoGateway, err := auth.NewCognitoGateway(awsCfg, os.Getenv("COGNITO_USER_POOL_CLIENT_ID"))
	if err != nil {
		log.Printf("Cognito gateway not configured: %v", err)
	} else {
		authGateway = cognitoGateway
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo)
	authUseCase := usecase.NewAuthUseCase(authGateway)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, ticketRepo, paymentGateway)

	trackingHandler := handlers.NewTrackingHandler(ticketUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, ticketUseCase)

	root := router.Group("/")
	addPingRoutes(root)
	addTicketRoutes(root, trackingHandler, authHandler, ticketHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Printf("SESSION_SECRET not set; using an insecure development secret")
		secret = "dev-only-insecure-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   30 * 24 * 60 * 60,
	})
	router.Use(sessions.Sessions(sessionName, store))
}
