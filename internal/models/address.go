package models

import "time"

type Address struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Label      string `gorm:"size:50" json:"label"`
	Street     string `gorm:"size:255;not null" json:"street"`
	Number     string `gorm:"size:20" json:"number"`
	Complement string `gorm:"size:100" json:"complement"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100;not null" json:"city"`
	State      string `gorm:"size:2" json:"state"`
	ZipCode    string `gorm:"size:10" json:"zip_code"`
	IsDefault  bool   `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
