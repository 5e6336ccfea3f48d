package review

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	appointmentdomain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	domain "github.com/LizServicos/home-services-api/internal/domain/review"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
	"github.com/LizServicos/home-services-api/internal/notification"
)

type Notifier interface {
	Dispatch(ev notification.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	AppointmentID uint
	FromUserID    uint
	Rating        int
	Comment       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	repo   domain.Repository
	notify Notifier
}

func NewCreateReview(
	repo domain.Repository,
	notify Notifier,
) *CreateReview {
	return &CreateReview{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrInvalidState("invalid_rating")
	}

	// --------------------------------------------------
	// 1. Agendamento
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Autor precisa ser uma das partes
	// --------------------------------------------------
	isClient := ap.ClientID == in.FromUserID
	isProfessional := ap.ProfessionalID == in.FromUserID

	if !isClient && !isProfessional {
		return nil, httperr.ErrForbidden("not_a_party")
	}

	// --------------------------------------------------
	// 3. Só agendamento concluído pode ser avaliado
	// --------------------------------------------------
	if ap.Status != string(appointmentdomain.StatusCompleted) {
		return nil, httperr.ErrInvalidState("appointment_not_completed")
	}

	// --------------------------------------------------
	// 4. Avaliado derivado do agendamento, nunca do caller.
	//    Self-review fica estruturalmente impossível.
	// --------------------------------------------------
	roleFrom := domain.RoleProfessional
	roleTo := domain.RoleClient
	toUserID := ap.ClientID
	if isClient {
		roleFrom = domain.RoleClient
		roleTo = domain.RoleProfessional
		toUserID = ap.ProfessionalID
	}

	// --------------------------------------------------
	// 5. Duplicata (pré-checagem; o índice único cobre a corrida)
	// --------------------------------------------------
	if _, err := uc.repo.FindByAppointmentAndAuthor(
		ctx,
		in.AppointmentID,
		in.FromUserID,
	); err == nil {
		return nil, httperr.ErrConflict("review_already_exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Insert + recompute na mesma transação
	// --------------------------------------------------
	rv := &models.Review{
		AppointmentID: in.AppointmentID,
		FromUserID:    in.FromUserID,
		ToUserID:      toUserID,
		RoleFrom:      roleFrom,
		RoleTo:        roleTo,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateWithRecompute(ctx, rv); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notification.Event{
		UserID:   toUserID,
		Type:     models.NotificationReviewReceived,
		Title:    "Nova avaliação",
		Message:  fmt.Sprintf("Você recebeu %d estrela(s)", rv.Rating),
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
