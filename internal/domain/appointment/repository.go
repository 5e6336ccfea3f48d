package appointment

import (
	"context"

	"github.com/LizServicos/home-services-api/internal/models"
)

type ListFilter struct {
	UserID uint
	Status string
	Page   int
	Limit  int
}

// Normalized garante page >= 1 e limit dentro de [1, 50]. Handlers e
// use cases paginam sempre com os valores efetivos, nunca com o que
// veio cru da query string.
func (f ListFilter) Normalized() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 50 {
		f.Limit = 50
	}
	return f
}

type Repository interface {
	// -------- Appointment (load / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// SaveTransition persiste o agendamento mutado e, quando a ação é
	// complete, incrementa services_completed do profissional na mesma
	// transação. O status de origem é re-checado sob lock de linha
	// dentro da transação; se uma transição concorrente venceu, retorna
	// invalid_state. Persistência parcial é bug de correção.
	SaveTransition(
		ctx context.Context,
		ap *models.Appointment,
		action Action,
	) error

	// -------- Appointment (create) --------
	GetProfessionalService(
		ctx context.Context,
		professionalID uint,
		subcategoryID uint,
	) (*models.ProfessionalSubcategory, error)

	GetAddressForUser(
		ctx context.Context,
		addressID uint,
		userID uint,
	) (*models.Address, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (query) --------
	ListForUser(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	CountCompletedForClient(
		ctx context.Context,
		clientID uint,
	) (int64, error)
}
