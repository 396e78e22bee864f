package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description     string         `gorm:"type:text" json:"description"`
	Price           float64        `gorm:"not null" json:"price"`
	OriginalPrice   float64        `json:"original_price"`
	SKU             string         `gorm:"uniqueIndex" json:"sku"`
	Images          ImageList      `gorm:"type:text" json:"images"`
	InStock         bool           `gorm:"default:true" json:"in_stock"`
	StockQuantity   int            `json:"stock_quantity"`
	IsNew           bool           `json:"is_new"`
	IsSale          bool           `json:"is_sale"`
	IsFeatured      bool           `json:"is_featured"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CategoryID      uint           `gorm:"index;not null" json:"category_id"`
	Category        Category       `gorm:"foreignKey:CategoryID" json:"category"`
	SubcategoryID   *uint          `gorm:"index" json:"subcategory_id"`
	Weight          float64        `json:"weight"`
	Dimensions      string         `json:"dimensions"`
	Materials       string         `json:"materials"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
