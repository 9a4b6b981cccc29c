package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Vastra API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account

PRODUCT
- POST "/product" - Create new product
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- PATCH "/product/:id/flags" - Update featured/bestseller flags
- POST "/product-images" - Upload product images

CART
- POST "/cart" - Add an item to the cart
- GET "/cart" - Get the current user's cart
- DELETE "/cart/item/:itemId" - Remove a cart item

ORDER
- POST "/order" - Place a new order
- GET "/order" - Retrieve all orders (admin)
- GET "/user/:userId/orders" - Get orders for a specific user
- GET "/order/:orderId" - Get order by ID
- GET "/order/:orderId/receipt" - Download the PDF receipt
- PATCH "/order/:orderId" - Update order status (admin)
- PATCH "/orders/mark-seen" - Mark a user's orders as seen (admin)

PAYMENT
- POST "/payment/orders" - Create a gateway order
- POST "/payment/verify" - Verify a gateway payment
- POST "/payment/failed" - Record a failed payment`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
