package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/httpresp"
	ucAppointment "github.com/LizServicos/home-services-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	transitionUC *ucAppointment.TransitionAppointment
	listUC       *ucAppointment.ListAppointments
	getUC        *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		listUC:       listUC,
		getUC:        getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	SubcategoryID  uint   `json:"subcategory_id" binding:"required"`
	AddressID      uint   `json:"address_id" binding:"required"`
	ScheduledDate  string `json:"scheduled_date" binding:"required"`
	ScheduledTime  string `json:"scheduled_time" binding:"required"`
	Notes          string `json:"notes"`
}

type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       userID,
		ProfessionalID: req.ProfessionalID,
		SubcategoryID:  req.SubcategoryID,
		AddressID:      req.AddressID,
		Date:           req.ScheduledDate,
		Time:           req.ScheduledTime,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	filter := domain.ListFilter{
		UserID: userID,
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}.Normalized()

	aps, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.Page(c, aps, total, filter.Page, filter.Limit)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.ActionConfirm, false)
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.transition(c, domain.ActionReject, true)
}

func (h *AppointmentHandler) MarkOnWay(c *gin.Context) {
	h.transition(c, domain.ActionMarkOnWay, false)
}

func (h *AppointmentHandler) Start(c *gin.Context) {
	h.transition(c, domain.ActionStart, false)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.ActionComplete, false)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.ActionCancel, true)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action domain.Action,
	withReason bool,
) {
	userID := currentUserID(c)

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var reason string
	if withReason {
		var req ReasonRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			reason = req.Reason
		}
	}

	ap, err := h.transitionUC.Execute(c.Request.Context(), ucAppointment.TransitionInput{
		AppointmentID: id,
		ActorUserID:   userID,
		Action:        action,
		Reason:        reason,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}
