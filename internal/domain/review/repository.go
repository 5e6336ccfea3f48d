package review

import (
	"context"

	"github.com/LizServicos/home-services-api/internal/models"
)

type ListFilter struct {
	ToUserID   uint
	FromUserID uint
	RoleTo     string
	MinRating  int
	Page       int
	Limit      int
}

// Normalized garante page >= 1 e limit dentro de [1, 50].
func (f ListFilter) Normalized() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 50 {
		f.Limit = 50
	}
	return f
}

type Repository interface {
	// -------- Lookups --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetReviewByID(
		ctx context.Context,
		id uint,
	) (*models.Review, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindByAppointmentAndAuthor(
		ctx context.Context,
		appointmentID uint,
		fromUserID uint,
	) (*models.Review, error)

	// -------- Write + recompute (transacional) --------

	// CreateWithRecompute insere a review e recalcula os agregados do
	// avaliado na mesma transação, com lock de linha no alvo. Violação
	// do índice único (appointment, autor) vira Conflict.
	CreateWithRecompute(
		ctx context.Context,
		rv *models.Review,
	) error

	DeleteWithRecompute(
		ctx context.Context,
		rv *models.Review,
	) error

	// RecomputeRatingFor refaz os agregados a partir das linhas fonte
	// (ferramenta de reparo; o caminho normal roda dentro das
	// transações acima).
	RecomputeRatingFor(
		ctx context.Context,
		userID uint,
	) error

	// -------- Query --------
	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Review, int64, error)

	StatsForUser(
		ctx context.Context,
		userID uint,
		roleTo string,
	) (Stats, error)
}
