package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/LizServicos/home-services-api/internal/domain/review"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ReviewGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ReviewGormRepository) GetReviewByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}

	return &rv, nil
}

func (r *ReviewGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("ProfessionalProfile").
		First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *ReviewGormRepository) FindByAppointmentAndAuthor(
	ctx context.Context,
	appointmentID uint,
	fromUserID uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where(
			"appointment_id = ? AND from_user_id = ?",
			appointmentID, fromUserID,
		).
		First(&rv).Error; err != nil {
		return nil, err
	}

	return &rv, nil
}

// --------------------------------------------------
// Write + recompute (transacional)
// --------------------------------------------------

func (r *ReviewGormRepository) CreateWithRecompute(
	ctx context.Context,
	rv *models.Review,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock de linha no avaliado: recomputes concorrentes para o
		// mesmo alvo serializam aqui.
		var target models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, rv.ToUserID).Error; err != nil {
			return err
		}

		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		return recomputeRatingFor(tx, rv.ToUserID)
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("review_already_exists")
		}
		if httperr.IsSerializationFailure(err) {
			return httperr.ErrTxAborted("transaction_aborted")
		}
		return err
	}

	return nil
}

func (r *ReviewGormRepository) DeleteWithRecompute(
	ctx context.Context,
	rv *models.Review,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var target models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, rv.ToUserID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Review{}, rv.ID).Error; err != nil {
			return err
		}

		return recomputeRatingFor(tx, rv.ToUserID)
	})

	if err != nil {
		if httperr.IsSerializationFailure(err) {
			return httperr.ErrTxAborted("transaction_aborted")
		}
		return err
	}

	return nil
}

func (r *ReviewGormRepository) RecomputeRatingFor(
	ctx context.Context,
	userID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var target models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, userID).Error; err != nil {
			return err
		}

		return recomputeRatingFor(tx, userID)
	})
}

type ratingAgg struct {
	Total int64
	Avg   float64
}

// recomputeRatingFor refaz os agregados a partir das linhas fonte,
// sempre dentro da transação do write que o disparou. Nunca ajusta o
// valor anterior incrementalmente.
func recomputeRatingFor(tx *gorm.DB, userID uint) error {

	// Metade PROFESSIONAL: pulada quando o usuário não tem perfil.
	var profile models.ProfessionalProfile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		agg, aggErr := aggregateRatings(tx, userID, domain.RoleProfessional)
		if aggErr != nil {
			return aggErr
		}

		if err := tx.Model(&models.ProfessionalProfile{}).
			Where("user_id = ?", userID).
			UpdateColumns(map[string]any{
				"rating_avg":   domain.Round1(agg.Avg),
				"review_count": agg.Total,
			}).Error; err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// sem perfil profissional
	default:
		return err
	}

	// Metade CLIENT: gravada no próprio registro do usuário.
	agg, err := aggregateRatings(tx, userID, domain.RoleClient)
	if err != nil {
		return err
	}

	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumns(map[string]any{
			"client_rating_avg":   domain.Round1(agg.Avg),
			"client_review_count": agg.Total,
		}).Error
}

func aggregateRatings(tx *gorm.DB, userID uint, roleTo string) (ratingAgg, error) {
	var agg ratingAgg
	err := tx.Model(&models.Review{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS avg").
		Where("to_user_id = ? AND role_to = ?", userID, roleTo).
		Scan(&agg).Error
	return agg, err
}

// --------------------------------------------------
// Query
// --------------------------------------------------

func (r *ReviewGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Review, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Review{})

	if filter.ToUserID != 0 {
		q = q.Where("to_user_id = ?", filter.ToUserID)
	}
	if filter.FromUserID != 0 {
		q = q.Where("from_user_id = ?", filter.FromUserID)
	}
	if filter.RoleTo != "" {
		q = q.Where("role_to = ?", filter.RoleTo)
	}
	if filter.MinRating > 0 {
		q = q.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var reviews []models.Review
	if err := q.
		Preload("FromUser").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewGormRepository) StatsForUser(
	ctx context.Context,
	userID uint,
	roleTo string,
) (domain.Stats, error) {

	stats := domain.Stats{
		UserID:       userID,
		Distribution: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var agg ratingAgg
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS avg").
		Where("to_user_id = ? AND role_to = ?", userID, roleTo).
		Scan(&agg).Error; err != nil {
		return stats, err
	}

	stats.AverageRating = domain.Round1(agg.Avg)
	stats.TotalReviews = agg.Total

	var groups []struct {
		Rating int
		Total  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("rating, COUNT(*) AS total").
		Where("to_user_id = ? AND role_to = ?", userID, roleTo).
		Group("rating").
		Scan(&groups).Error; err != nil {
		return stats, err
	}

	for _, g := range groups {
		stats.Distribution[g.Rating] = g.Total
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
