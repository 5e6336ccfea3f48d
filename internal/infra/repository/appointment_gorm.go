package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (load / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Subcategory.Category").
		Preload("Address").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) SaveTransition(
	ctx context.Context,
	ap *models.Appointment,
	action domain.Action,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Re-checa o status sob lock: a linha foi carregada fora da
		// transação e uma transição concorrente pode ter vencido.
		var current models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&current, ap.ID).Error; err != nil {
			return err
		}

		if err := domain.CanApply(domain.Status(current.Status), action); err != nil {
			return err
		}

		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		// Incremento por expressão SQL: dois completes concorrentes do
		// mesmo profissional nunca perdem atualização.
		if action == domain.ActionComplete {
			if err := tx.Model(&models.ProfessionalProfile{}).
				Where("user_id = ?", ap.ProfessionalID).
				UpdateColumn(
					"services_completed",
					gorm.Expr("services_completed + 1"),
				).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if httperr.IsSerializationFailure(err) {
			return httperr.ErrTxAborted("transaction_aborted")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalService(
	ctx context.Context,
	professionalID uint,
	subcategoryID uint,
) (*models.ProfessionalSubcategory, error) {

	var ps models.ProfessionalSubcategory
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND subcategory_id = ? AND is_active = ?",
			professionalID, subcategoryID, true,
		).
		First(&ps).Error; err != nil {
		return nil, err
	}

	return &ps, nil
}

func (r *AppointmentGormRepository) GetAddressForUser(
	ctx context.Context,
	addressID uint,
	userID uint,
) (*models.Address, error) {

	var addr models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&addr).Error; err != nil {
		return nil, err
	}

	return &addr, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (query)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForUser(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? OR professional_id = ?",
			filter.UserID, filter.UserID,
		)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var aps []models.Appointment
	if err := q.
		Preload("Client").
		Preload("Professional").
		Preload("Subcategory.Category").
		Preload("Address").
		Order("scheduled_date DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

func (r *AppointmentGormRepository) CountCompletedForClient(
	ctx context.Context,
	clientID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND status = ?",
			clientID, string(domain.StatusCompleted),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
