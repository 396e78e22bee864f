package models

type Category struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Slug          string        `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	IsActive      bool          `gorm:"default:true" json:"is_active"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
}

// Subcategory always belongs to an existing Category; creation is rejected
// when the parent is missing and deleting the parent removes its children.
type Subcategory struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint   `gorm:"index;not null" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
	Slug       string `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
}
