package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/LizServicos/home-services-api/internal/domain/review"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Review, int64, error) {

	return uc.repo.List(ctx, filter.Normalized())
}

// ======================================================
// CHECK REVIEWED
// ======================================================

// CheckReviewed responde se o usuário logado já avaliou o agendamento.
type CheckReviewed struct {
	repo domain.Repository
}

func NewCheckReviewed(repo domain.Repository) *CheckReviewed {
	return &CheckReviewed{repo: repo}
}

func (uc *CheckReviewed) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Review, error) {

	rv, err := uc.repo.FindByAppointmentAndAuthor(ctx, appointmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return rv, nil
}

// ======================================================
// STATS
// ======================================================

type UserStats struct {
	UserID             uint          `json:"user_id"`
	AverageRating      float64       `json:"average_rating"`
	TotalReviews       int64         `json:"total_reviews"`
	RatingDistribution map[int]int64 `json:"rating_distribution"`

	SecondaryRole        string  `json:"secondary_role"`
	SecondaryRatingAvg   float64 `json:"secondary_rating_avg"`
	SecondaryReviewCount int64   `json:"secondary_review_count"`
}

type GetUserStats struct {
	repo domain.Repository
}

func NewGetUserStats(repo domain.Repository) *GetUserStats {
	return &GetUserStats{repo: repo}
}

// Execute agrega pelo papel principal do usuário e resume o papel
// secundário (um profissional também acumula avaliações como cliente).
func (uc *GetUserStats) Execute(
	ctx context.Context,
	userID uint,
) (*UserStats, error) {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}

	primary := domain.RoleClient
	secondary := domain.RoleProfessional
	if user.UserType == models.UserTypeProfessional {
		primary = domain.RoleProfessional
		secondary = domain.RoleClient
	}

	primaryStats, err := uc.repo.StatsForUser(ctx, userID, primary)
	if err != nil {
		return nil, err
	}

	secondaryStats, err := uc.repo.StatsForUser(ctx, userID, secondary)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		UserID:               userID,
		AverageRating:        primaryStats.AverageRating,
		TotalReviews:         primaryStats.TotalReviews,
		RatingDistribution:   primaryStats.Distribution,
		SecondaryRole:        secondary,
		SecondaryRatingAvg:   secondaryStats.AverageRating,
		SecondaryReviewCount: secondaryStats.TotalReviews,
	}, nil
}
