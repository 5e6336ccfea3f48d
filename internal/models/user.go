package models

import "time"

const (
	UserTypeClient       = "CLIENT"
	UserTypeProfessional = "PROFESSIONAL"
	UserTypeAdmin        = "ADMIN"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Avatar       string `gorm:"size:255" json:"avatar"`
	UserType     string `gorm:"size:20;default:'CLIENT'" json:"user_type"`

	// Agregados de avaliação recebidos COMO CLIENTE.
	// Recalculados pela transação de review, nunca incrementados.
	ClientRatingAvg   float64 `gorm:"default:0" json:"client_rating_avg"`
	ClientReviewCount int     `gorm:"default:0" json:"client_review_count"`

	ProfessionalProfile *ProfessionalProfile `json:"professional_profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
