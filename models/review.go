package models

import "time"

// Review is created by customer submission with IsApproved=false and only
// surfaces on the storefront once an admin approves it.
type Review struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID     uint      `gorm:"index;not null" json:"product_id"`
	Rating        int       `gorm:"not null" json:"rating"` // 1..5
	Title         string    `json:"title"`
	Comment       string    `gorm:"type:text;not null" json:"comment"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	IsApproved    bool      `gorm:"default:false;index" json:"is_approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
