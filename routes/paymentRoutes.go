package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/controllers"
	"github.com/vastracart/vastra-api/middlewares"
	"github.com/vastracart/vastra-api/services"
)

func PaymentRoutes(server *gin.Engine, svc *services.PaymentService) {
	payment := server.Group("/payment", middlewares.RequireAuth())
	{
		payment.POST("/orders", controllers.CreatePaymentOrder(svc))
		payment.POST("/verify", controllers.VerifyPayment(svc))
		payment.POST("/failed", controllers.PaymentFailed(svc))
	}
}
