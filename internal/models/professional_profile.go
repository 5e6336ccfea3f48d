package models

import "time"

type ProfessionalProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Bio       string `gorm:"size:500" json:"bio"`
	Available bool   `gorm:"default:true" json:"available"`

	// Agregados de avaliação recebidos COMO PROFISSIONAL.
	RatingAvg   float64 `gorm:"default:0" json:"rating_avg"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	ServicesCompleted int `gorm:"default:0" json:"services_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
