package models

import "time"

const (
	NotificationAppointmentConfirmed = "APPOINTMENT_CONFIRMED"
	NotificationAppointmentRejected  = "APPOINTMENT_REJECTED"
	NotificationAppointmentCancelled = "APPOINTMENT_CANCELLED"
	NotificationAppointmentCompleted = "APPOINTMENT_COMPLETED"
	NotificationReviewReceived       = "REVIEW_RECEIVED"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"index;not null" json:"user_id"`
	Type   string `gorm:"size:50;not null" json:"type"`

	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
