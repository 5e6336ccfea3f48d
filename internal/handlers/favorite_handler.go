package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

type FavoriteHandler struct {
	db *gorm.DB
}

func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var favorites []models.Favorite
	if err := h.db.
		Preload("Professional").
		Preload("Professional.ProfessionalProfile").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		httperr.Internal(c, "failed_to_list_favorites", "Erro ao listar favoritos.")
		return
	}

	httpresp.OK(c, favorites)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := currentUserID(c)

	professionalID, ok := paramUint(c, "professionalId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND user_type = ?", professionalID, models.UserTypeProfessional).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	fav := models.Favorite{
		UserID:         userID,
		ProfessionalID: professionalID,
	}

	if err := h.db.Create(&fav).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "already_favorited", "Profissional já favoritado.")
			return
		}
		httperr.Internal(c, "failed_to_add_favorite", "Erro ao favoritar.")
		return
	}

	c.JSON(201, fav)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := currentUserID(c)

	professionalID, ok := paramUint(c, "professionalId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.
		Where("user_id = ? AND professional_id = ?", userID, professionalID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_remove_favorite", "Erro ao remover favorito.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "favorite_not_found", "Favorito não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Favorito removido."})
}
