package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Brand       string         `json:"brand" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Price       float64        `json:"price" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Subcategory string         `json:"subcategory"`
	Colors      datatypes.JSON `json:"colors"`
	Sizes       datatypes.JSON `json:"sizes"`
	Featured    bool           `json:"featured"`
	Bestseller  bool           `json:"bestseller"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
