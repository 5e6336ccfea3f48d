package appointment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID       uint
	ProfessionalID uint
	SubcategoryID  uint
	AddressID      uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo domain.Repository
}

func NewCreateAppointment(repo domain.Repository) *CreateAppointment {
	return &CreateAppointment{repo: repo}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. O profissional oferece esse serviço?
	// --------------------------------------------------
	service, err := uc.repo.GetProfessionalService(
		ctx,
		in.ProfessionalID,
		in.SubcategoryID,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_offered")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Endereço pertence ao cliente?
	// --------------------------------------------------
	addr, err := uc.repo.GetAddressForUser(ctx, in.AddressID, in.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("address_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3. Data agendada
	// --------------------------------------------------
	scheduled, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrInvalidState("invalid_date")
	}

	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrInvalidState("invalid_time")
	}

	// --------------------------------------------------
	// 4. Criação (preço congelado do catálogo)
	// --------------------------------------------------
	ap := &models.Appointment{
		OrderNumber:    newOrderNumber(),
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		SubcategoryID:  in.SubcategoryID,
		AddressID:      addr.ID,
		ScheduledDate:  scheduled,
		ScheduledTime:  in.Time,
		Status:         string(domain.InitialStatus()),
		Price:          service.Price,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}

// Número de pedido legível, único por índice. Mesmo formato do app
// móvel: prefixo LIZ + epoch em ms + 3 dígitos.
func newOrderNumber() string {
	return fmt.Sprintf("LIZ%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
