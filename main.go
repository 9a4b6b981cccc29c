package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/initializers"
	"github.com/vastracart/vastra-api/models"
	"github.com/vastracart/vastra-api/routes"
	"github.com/vastracart/vastra-api/services"
	"github.com/vastracart/vastra-api/stores"
	"github.com/vastracart/vastra-api/utils"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	orderStore := &stores.OrderStore{DB: initializers.DB}
	cartStore := &stores.CartStore{DB: initializers.DB}

	orderService := &services.OrderService{
		Users:    &stores.UserStore{DB: initializers.DB},
		Products: &stores.ProductStore{DB: initializers.DB},
		Orders:   orderStore,
		Carts:    cartStore,
		ConfirmationEmail: func(user *models.User, order *models.Order) error {
			emailData := utils.EmailData{
				Name:    user.Fullname,
				Message: "Thank you for your order! We will let you know once it ships.",
				OrderID: order.OrderID,
				Total:   order.TotalAmount,
			}
			return utils.SendEmail(user.Email, "Order Confirmation", emailData, "templates/order_confirmation.html")
		},
	}

	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	paymentService := &services.PaymentService{
		KeyID:     keyID,
		KeySecret: keySecret,
		Gateway:   services.NewRazorpayGateway(keyID, keySecret),
		Orders:    orderStore,
		Carts:     cartStore,
		Failures:  &stores.FailureStore{DB: initializers.DB},
		Shipping: services.NewShippingClient(
			os.Getenv("SHIPPING_API_URL"),
			os.Getenv("SHIPPING_EMAIL"),
			os.Getenv("SHIPPING_PASSWORD"),
		),
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.vastracart.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server, orderService, orderStore)
	routes.PaymentRoutes(server, paymentService)
	server.Run()
}
