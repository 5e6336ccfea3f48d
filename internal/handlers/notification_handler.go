package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	q := h.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	if c.Query("is_read") != "" {
		q = q.Where("is_read = ?", c.Query("is_read") == "true")
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	var notifications []models.Notification
	if err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	httpresp.Page(c, notifications, total, page, limit)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_mark_read", "Erro ao marcar notificação.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Notificação lida."})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_mark_read", "Erro ao marcar notificações.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Notificações lidas."})
}
