package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/controllers"
	"github.com/vastracart/vastra-api/middlewares"
	"github.com/vastracart/vastra-api/services"
)

func OrderRoutes(server *gin.Engine, svc *services.OrderService, store services.OrderStore) {
	authed := server.Group("/", middlewares.RequireAuth())
	{
		authed.POST("/order", controllers.PlaceOrder(svc))
		authed.GET("/user/:userId/orders", controllers.GetOrdersByCustomer(store))
		authed.GET("/order/:orderId", controllers.GetOrderByID(svc))
		authed.GET("/order/:orderId/receipt", controllers.DownloadReceipt(svc))
	}

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/order", controllers.GetOrders(store))
		admin.PATCH("/order/:orderId", controllers.UpdateOrderStatus(svc))
		admin.PATCH("/orders/mark-seen", controllers.MarkOrdersSeen(svc))
	}
}
