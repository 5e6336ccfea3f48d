package handlers

import (
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
)

// Documentos de verificação de identidade: o usuário registra a URL do
// arquivo (já subido para o bucket), um admin aprova ou recusa.
type DocumentHandler struct {
	db *gorm.DB
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{db: db}
}

// --------- Requests ---------

type CreateDocumentRequest struct {
	Type string `json:"type" binding:"required,oneof=SELFIE_WITH_DOCUMENT ID_DOCUMENT"`
	URL  string `json:"url" binding:"required"`
}

type UpdateDocumentRequest struct {
	URL string `json:"url" binding:"required"`
}

type ReviewDocumentRequest struct {
	Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	RejectionReason string `json:"rejection_reason" binding:"max=500"`
}

// --------- Handlers ---------

func (h *DocumentHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var docs []models.UserDocument
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Erro ao listar documentos.")
		return
	}

	httpresp.OK(c, gin.H{"documents": docs})
}

func (h *DocumentHandler) Get(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	doc, ok := h.loadOwned(c, id, userID)
	if !ok {
		return
	}

	httpresp.OK(c, doc)
}

func (h *DocumentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validDocumentURL(req.URL) {
		httperr.BadRequest(c, "invalid_document_url", "URL do documento inválida.")
		return
	}

	doc := models.UserDocument{
		UserID: userID,
		Type:   req.Type,
		URL:    req.URL,
		Status: models.DocumentStatusPending,
	}

	if err := h.db.Create(&doc).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "document_type_already_exists",
				"Já existe um documento desse tipo. Atualize o documento existente.")
			return
		}
		httperr.Internal(c, "failed_to_create_document", "Erro ao registrar documento.")
		return
	}

	c.JSON(201, doc)
}

// Update substitui a URL e devolve o documento para revisão.
func (h *DocumentHandler) Update(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validDocumentURL(req.URL) {
		httperr.BadRequest(c, "invalid_document_url", "URL do documento inválida.")
		return
	}

	doc, ok := h.loadOwned(c, id, userID)
	if !ok {
		return
	}

	resetForReview(doc, req.URL)

	if err := h.db.Save(doc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_document", "Erro ao atualizar documento.")
		return
	}

	httpresp.OK(c, doc)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	doc, ok := h.loadOwned(c, id, userID)
	if !ok {
		return
	}

	if err := h.db.Delete(doc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_document", "Erro ao remover documento.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Documento removido."})
}

// Review aprova ou recusa um documento pendente. Somente admin.
func (h *DocumentHandler) Review(c *gin.Context) {
	if currentUserType(c) != models.UserTypeAdmin {
		httperr.Forbidden(c, "admin_only", "Apenas administradores revisam documentos.")
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var doc models.UserDocument
	if err := h.db.First(&doc, id).Error; err != nil {
		httperr.NotFound(c, "document_not_found", "Documento não encontrado.")
		return
	}

	now := time.Now()
	doc.Status = req.Status
	doc.ReviewedAt = &now
	doc.RejectionReason = ""
	if req.Status == models.DocumentStatusRejected {
		doc.RejectionReason = req.RejectionReason
	}

	if err := h.db.Save(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_review_document", "Erro ao revisar documento.")
		return
	}

	httpresp.OK(c, doc)
}

// --------- Internals ---------

// loadOwned carrega o documento do próprio usuário. Documento de outro
// usuário responde 404, nunca revela que o id existe.
func (h *DocumentHandler) loadOwned(
	c *gin.Context,
	id uint,
	userID uint,
) (*models.UserDocument, bool) {

	var doc models.UserDocument
	if err := h.db.First(&doc, id).Error; err != nil || doc.UserID != userID {
		httperr.NotFound(c, "document_not_found", "Documento não encontrado.")
		return nil, false
	}
	return &doc, true
}

func validDocumentURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func resetForReview(doc *models.UserDocument, newURL string) {
	doc.URL = newURL
	doc.Status = models.DocumentStatusPending
	doc.RejectionReason = ""
	doc.ReviewedAt = nil
}
