package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/controllers"
	"github.com/vastracart/vastra-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.POST("", controllers.AddCartItem)
		cart.GET("", controllers.GetCart)
		cart.DELETE("/item/:itemId", controllers.RemoveCartItem)
	}
}
