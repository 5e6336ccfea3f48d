package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/LizServicos/home-services-api/internal/domain/review"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	ucReview "github.com/LizServicos/home-services-api/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	createUC *ucReview.CreateReview
	deleteUC *ucReview.DeleteReview
	listUC   *ucReview.ListReviews
	checkUC  *ucReview.CheckReviewed
	statsUC  *ucReview.GetUserStats
}

func NewReviewHandler(
	createUC *ucReview.CreateReview,
	deleteUC *ucReview.DeleteReview,
	listUC *ucReview.ListReviews,
	checkUC *ucReview.CheckReviewed,
	statsUC *ucReview.GetUserStats,
) *ReviewHandler {
	return &ReviewHandler{
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		checkUC:  checkUC,
		statsUC:  statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=1000"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rv, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		AppointmentID: req.AppointmentID,
		FromUserID:    userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(201, rv)
}

// ======================================================
// LIST / CHECK / STATS
// ======================================================

func (h *ReviewHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		ToUserID:   uint(queryInt(c, "user_id", 0)),
		FromUserID: uint(queryInt(c, "from_user_id", 0)),
		RoleTo:     c.Query("role_to"),
		MinRating:  queryInt(c, "min_rating", 0),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 10),
	}.Normalized()

	reviews, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	httpresp.Page(c, reviews, total, filter.Page, filter.Limit)
}

// ListForProfessional devolve as avaliações recebidas como profissional.
func (h *ReviewHandler) ListForProfessional(c *gin.Context) {
	professionalID, ok := paramUint(c, "professionalId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	filter := domain.ListFilter{
		ToUserID: professionalID,
		RoleTo:   domain.RoleProfessional,
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}.Normalized()

	reviews, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	httpresp.Page(c, reviews, total, filter.Page, filter.Limit)
}

func (h *ReviewHandler) CheckReviewed(c *gin.Context) {
	userID := currentUserID(c)

	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	rv, err := h.checkUC.Execute(c.Request.Context(), appointmentID, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_check_review", "Erro ao consultar avaliação.")
		return
	}

	if rv == nil {
		httpresp.OK(c, gin.H{"reviewed": false})
		return
	}

	httpresp.OK(c, gin.H{"reviewed": true, "review": rv})
}

func (h *ReviewHandler) Stats(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, stats)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, userID); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Avaliação removida."})
}
