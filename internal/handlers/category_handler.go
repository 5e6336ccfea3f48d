package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.
		Preload("Subcategories").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.OK(c, categories)
}

func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var subcategories []models.Subcategory
	if err := h.db.
		Where("category_id = ?", id).
		Order("name ASC").
		Find(&subcategories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_subcategories", "Erro ao listar subcategorias.")
		return
	}

	httpresp.OK(c, subcategories)
}
