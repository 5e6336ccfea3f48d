package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	return uc.repo.ListForUser(ctx, filter.Normalized())
}

// ======================================================
// GET BY ID
// ======================================================

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute restringe a leitura às duas partes do agendamento.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	if ap.ClientID != userID && ap.ProfessionalID != userID {
		return nil, httperr.ErrForbidden("not_a_party")
	}

	return ap, nil
}
