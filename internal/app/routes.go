package app

import (
	handlers "github.com/abhay7074/nexamind-payments/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(
	checkout *handlers.CheckoutHandler,
	webhook *handlers.WebhookHandler,
	pixel *handlers.PixelHandler,
	email *handlers.EmailHandler,
) {
	a.Router.POST("/orders", checkout.CreateOrder)
	a.Router.POST("/payments/verify", checkout.VerifyPayment)
	a.Router.POST("/webhooks/cashfree", webhook.HandleCashfree)

	events := a.Router.Group("/events")
	events.POST("/purchase", pixel.Purchase)
	events.POST("/checkout", pixel.InitiateCheckout)
	events.POST("/lead", pixel.Lead)
	events.POST("/pageview", pixel.PageView)

	a.Router.POST("/emails/ebook", email.SendEbook)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
