package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	CartID      int     `json:"-"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
}

// Cart is one document per user, cleared wholesale after a successful order.
type Cart struct {
	gorm.Model
	UserID int        `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
