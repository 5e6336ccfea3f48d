package models

import "time"

// Uma parte avalia a contraparte de um agendamento concluído,
// no máximo uma vez por (appointment, autor).
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex:idx_review_appointment_author;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FromUserID uint `gorm:"uniqueIndex:idx_review_appointment_author;not null" json:"from_user_id"`
	FromUser   User `gorm:"foreignKey:FromUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"from_user"`

	ToUserID uint `gorm:"index;not null" json:"to_user_id"`
	ToUser   User `gorm:"foreignKey:ToUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RoleFrom string `gorm:"size:20;not null" json:"role_from"`
	RoleTo   string `gorm:"size:20;not null" json:"role_to"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
