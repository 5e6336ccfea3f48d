package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// ======================================================
// SEARCH
// ======================================================

// Search filtra profissionais por serviço, nota mínima e
// disponibilidade. A busca por distância fica no app, não aqui.
func (h *ProfessionalHandler) Search(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	q := h.db.Model(&models.ProfessionalProfile{}).
		Joins("JOIN users ON users.id = professional_profiles.user_id")

	if c.Query("available") != "" {
		q = q.Where("professional_profiles.available = ?", c.Query("available") == "true")
	}

	if minRating := queryInt(c, "min_rating", 0); minRating > 0 {
		q = q.Where("professional_profiles.rating_avg >= ?", minRating)
	}

	if subcategoryID := queryInt(c, "subcategory_id", 0); subcategoryID > 0 {
		q = q.Where(
			`professional_profiles.user_id IN (
				SELECT professional_id FROM professional_subcategories
				WHERE subcategory_id = ? AND is_active = ?
			)`,
			subcategoryID, true,
		)
	} else if categoryID := queryInt(c, "category_id", 0); categoryID > 0 {
		q = q.Where(
			`professional_profiles.user_id IN (
				SELECT ps.professional_id FROM professional_subcategories ps
				JOIN subcategories s ON s.id = ps.subcategory_id
				WHERE s.category_id = ? AND ps.is_active = ?
			)`,
			categoryID, true,
		)
	}

	switch c.DefaultQuery("sort_by", "rating") {
	case "services_completed":
		q = q.Order("professional_profiles.services_completed DESC")
	default:
		q = q.Order("professional_profiles.rating_avg DESC")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_search", "Erro ao buscar profissionais.")
		return
	}

	var profiles []models.ProfessionalProfile
	if err := q.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_search", "Erro ao buscar profissionais.")
		return
	}

	httpresp.Page(c, profiles, total, page, limit)
}

// ======================================================
// GET
// ======================================================

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var user models.User
	if err := h.db.
		Preload("ProfessionalProfile").
		Where("id = ? AND user_type = ?", id, models.UserTypeProfessional).
		First(&user).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var services []models.ProfessionalSubcategory
	h.db.
		Preload("Subcategory").
		Where("professional_id = ? AND is_active = ?", user.ID, true).
		Find(&services)

	httpresp.OK(c, gin.H{
		"professional": user,
		"services":     services,
	})
}
