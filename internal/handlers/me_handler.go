package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	appointmentdomain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	"github.com/LizServicos/home-services-api/internal/models"
	"github.com/LizServicos/home-services-api/internal/storage"
)

const avatarMaxUploadBytes = 5 << 20

type MeHandler struct {
	db           *gorm.DB
	uploader     *storage.Uploader
	appointments appointmentdomain.Repository
}

func NewMeHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	appointments appointmentdomain.Repository,
) *MeHandler {
	return &MeHandler{
		db:           db,
		uploader:     uploader,
		appointments: appointments,
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.
		Preload("ProfessionalProfile").
		First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	hired, err := h.appointments.CountCompletedForClient(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_profile", "Erro ao carregar perfil.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":          user,
		"servicesHired": hired,
	})
}

type UpdateMeRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.
		Preload("ProfessionalProfile").
		First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	if req.Bio != "" && user.ProfessionalProfile != nil {
		user.ProfessionalProfile.Bio = req.Bio
		h.db.Save(user.ProfessionalProfile)
	}

	httpresp.OK(c, user)
}

// UploadAvatar normaliza a imagem (resize + webp) e sobe para o S3.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := currentUserID(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}

	if file.Size > avatarMaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}

	normalized, err := storage.NormalizeAvatar(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", userID, uuid.New().String())

	url, err := h.uploader.Put(c.Request.Context(), key, "image/webp", normalized)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Erro ao enviar imagem.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, gin.H{"avatar": url})
}
