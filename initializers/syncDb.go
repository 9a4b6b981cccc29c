package initializers

import (
	"log"

	"github.com/vastracart/vastra-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentFailure{},
	)
	log.Println("Database synced successfully.")
}
