package routes

import (
	"handyman-orders/config"
	"handyman-orders/controllers"
	"handyman-orders/middleware"
	"handyman-orders/realtime"
	"handyman-orders/repositories"
	"handyman-orders/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	hub := realtime.NewHub()
	orderService := services.NewOrderService(repositories.NewOrderRepository(), hub)

	orderCtrl := controllers.NewOrderController(orderService)
	webhookCtrl := controllers.NewWebhookController(orderService)
	eventsCtrl := controllers.NewEventsController(hub)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/orders", orderCtrl.GetOrders)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.POST("/orders/:id/in-progress", orderCtrl.MoveToInProgress)

	webhooks := router.Group("/webhooks")
	webhooks.Use(middleware.WebhookAuthMiddleware(config.AppConfig.WebhookKey))
	{
		webhooks.POST("/payment", webhookCtrl.PaymentWebhook)
	}

	router.GET("/events", eventsCtrl.Stream)

	router.StaticFile("/", "./static/index.html")
}
