package app

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/gateway"
	handlers "github.com/abhay7074/nexamind-payments/internal/handlers"
	"github.com/abhay7074/nexamind-payments/internal/mailer"
	"github.com/abhay7074/nexamind-payments/internal/metrics"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/pixel"
	"github.com/abhay7074/nexamind-payments/internal/publisher"
	"github.com/abhay7074/nexamind-payments/internal/repository/posgrest"
	"github.com/abhay7074/nexamind-payments/internal/service"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}, &models.ProcessedEvent{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	orderRepo := posgrest.New[models.Order](db)
	eventRepo := posgrest.New[models.ProcessedEvent](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	cashfree := gateway.NewCashfreeClient(cfg.Cashfree, nil)
	facebook := pixel.NewFacebookClient(cfg.Facebook, cfg.Product, nil)
	ebookMailer := mailer.New(cfg.Email, cfg.Product)

	checkoutService := service.NewCheckoutService(
		cashfree,
		orderRepo,
		eventRepo,
		facebook,
		ebookMailer,
		kafkaPublisher,
		cfg.Product,
		cfg.APP.PublicBaseURL,
	)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(checkoutService)
	pixelHandler := handlers.NewPixelHandler(facebook, cfg.Product.Amount)
	emailHandler := handlers.NewEmailHandler(ebookMailer)

	metrics.RegisterMetrics()

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.Router.Use(corsMiddleware())
	a.Router.HandleMethodNotAllowed = true
	a.RegisterRoutes(checkoutHandler, webhookHandler, pixelHandler, emailHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

// corsMiddleware echoes the permissive headers the storefront relies on and
// short-circuits OPTIONS preflights.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
