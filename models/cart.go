package models

import "time"

// Cart is keyed by a client-held token (X-Cart-Token header) instead of a
// user account; the storefront has no customer login.
type Cart struct {
	CartID    uint           `gorm:"primaryKey" json:"cart_id"`
	Token     string         `gorm:"uniqueIndex;not null" json:"token"`
	Items     []CartItem     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Favorites []CartFavorite `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"favorites"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"cart_id"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	ProductStock int       `json:"product_stock"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// CartFavorite marks a product as favorited for a cart token.
type CartFavorite struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"index;uniqueIndex:idx_cart_favorite" json:"cart_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_favorite" json:"product_id"`
}
