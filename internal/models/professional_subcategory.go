package models

import "time"

// Preço do profissional por subcategoria. O preço do agendamento é
// copiado daqui no momento da criação e não muda depois.
type ProfessionalSubcategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"uniqueIndex:idx_prof_subcategory" json:"professional_id"`
	SubcategoryID  uint `gorm:"uniqueIndex:idx_prof_subcategory" json:"subcategory_id"`

	Subcategory Subcategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"subcategory"`

	Price    float64 `json:"price"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
