package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderNumber string `gorm:"size:30;uniqueIndex;not null" json:"order_number"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`
	Professional   User `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	SubcategoryID uint        `json:"subcategory_id"`
	Subcategory   Subcategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"subcategory"`

	AddressID uint    `json:"address_id"`
	Address   Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address"`

	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledTime string    `gorm:"size:5" json:"scheduled_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// Preço congelado no momento da criação (catálogo pode mudar depois).
	Price float64 `json:"price"`

	Notes              string `gorm:"size:500" json:"notes"`
	CancellationReason string `gorm:"size:500" json:"cancellation_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
