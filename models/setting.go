package models

// Setting is one row of the flat key-value settings bag (site name, contact
// info, currency, shipping/tax display defaults).
type Setting struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

type SocialLink struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Platform string `gorm:"not null" json:"platform"`
	URL      string `gorm:"not null" json:"url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
