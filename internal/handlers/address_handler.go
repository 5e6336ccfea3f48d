package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

type AddressHandler struct {
	db *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

type AddressRequest struct {
	Label      string `json:"label"`
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"max=2"`
	ZipCode    string `json:"zip_code"`
	IsDefault  bool   `json:"is_default"`
}

func (h *AddressHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var addresses []models.Address
	if err := h.db.
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "Erro ao listar endereços.")
		return
	}

	httpresp.OK(c, addresses)
}

func (h *AddressHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	addr := models.Address{
		UserID:     userID,
		Label:      req.Label,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		ZipCode:    req.ZipCode,
		IsDefault:  req.IsDefault,
	}

	if err := h.db.Create(&addr).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "Erro ao criar endereço.")
		return
	}

	// Só um endereço default por usuário
	if addr.IsDefault {
		h.db.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", userID, addr.ID).
			Update("is_default", false)
	}

	c.JSON(201, addr)
}

func (h *AddressHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var addr models.Address
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&addr).Error; err != nil {
		httperr.NotFound(c, "address_not_found", "Endereço não encontrado.")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	addr.Label = req.Label
	addr.Street = req.Street
	addr.Number = req.Number
	addr.Complement = req.Complement
	addr.District = req.District
	addr.City = req.City
	addr.State = req.State
	addr.ZipCode = req.ZipCode
	addr.IsDefault = req.IsDefault

	if err := h.db.Save(&addr).Error; err != nil {
		httperr.Internal(c, "failed_to_update_address", "Erro ao atualizar endereço.")
		return
	}

	if addr.IsDefault {
		h.db.Model(&models.Address{}).
			Where("user_id = ? AND id <> ?", userID, addr.ID).
			Update("is_default", false)
	}

	httpresp.OK(c, addr)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_address", "Erro ao remover endereço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "address_not_found", "Endereço não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Endereço removido."})
}
