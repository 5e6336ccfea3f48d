package models

import "time"

type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID         uint `gorm:"uniqueIndex:idx_favorite_user_prof;not null" json:"user_id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_favorite_user_prof;not null" json:"professional_id"`

	Professional User `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional"`

	CreatedAt time.Time `json:"created_at"`
}
