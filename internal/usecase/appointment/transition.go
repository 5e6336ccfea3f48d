package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
	"github.com/LizServicos/home-services-api/internal/notification"
)

// Notifier é o contrato mínimo do dispatcher de notificações.
type Notifier interface {
	Dispatch(ev notification.Event)
}

// ======================================================
// USE CASE — todas as transições do ciclo de vida
// ======================================================

// TransitionAppointment executa uma ação da tabela de transições:
// confirm, reject, mark_on_way, start, complete, cancel. A ordem das
// checagens é fixa: NotFound → Forbidden → InvalidState.
type TransitionAppointment struct {
	repo   domain.Repository
	notify Notifier
}

func NewTransitionAppointment(
	repo domain.Repository,
	notify Notifier,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:   repo,
		notify: notify,
	}
}

type TransitionInput struct {
	AppointmentID uint
	ActorUserID   uint
	Action        domain.Action
	Reason        string
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	if err := domain.Authorize(ap, in.Action, in.ActorUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := domain.Apply(ap, in.Action, now, in.Reason); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveTransition(ctx, ap, in.Action); err != nil {
		return nil, err
	}

	uc.dispatchFor(ap, in.Action, in.ActorUserID)

	return ap, nil
}

// dispatchFor avisa a contraparte sobre a mudança de estado.
func (uc *TransitionAppointment) dispatchFor(
	ap *models.Appointment,
	action domain.Action,
	actorID uint,
) {

	var (
		target uint
		kind   string
		title  string
	)

	switch action {
	case domain.ActionConfirm:
		target = ap.ClientID
		kind = models.NotificationAppointmentConfirmed
		title = "Agendamento confirmado"
	case domain.ActionReject:
		target = ap.ClientID
		kind = models.NotificationAppointmentRejected
		title = "Agendamento recusado"
	case domain.ActionComplete:
		target = ap.ClientID
		kind = models.NotificationAppointmentCompleted
		title = "Serviço concluído"
	case domain.ActionCancel:
		// avisa a outra parte, seja quem for o cancelador
		target = ap.ProfessionalID
		if actorID == ap.ProfessionalID {
			target = ap.ClientID
		}
		kind = models.NotificationAppointmentCancelled
		title = "Agendamento cancelado"
	default:
		return
	}

	uc.notify.Dispatch(notification.Event{
		UserID:   target,
		Type:     kind,
		Title:    title,
		Message:  fmt.Sprintf("Pedido %s", ap.OrderNumber),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
}
