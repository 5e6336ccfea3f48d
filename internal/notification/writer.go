package notification

import (
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/models"
)

type Writer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Writer {
	return &Writer{db: db}
}

func (w *Writer) Write(
	userID uint,
	kind string,
	title string,
	message string,
	entity string,
	entityID *uint,
) error {

	n := models.Notification{
		UserID:   userID,
		Type:     kind,
		Title:    title,
		Message:  message,
		Entity:   entity,
		EntityID: entityID,
	}

	return w.db.Create(&n).Error
}
