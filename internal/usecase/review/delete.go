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
// USE CASE
// ======================================================

// DeleteReview remove uma avaliação (autor ou admin) e recalcula os
// agregados do avaliado na mesma transação.
type DeleteReview struct {
	repo domain.Repository
}

func NewDeleteReview(repo domain.Repository) *DeleteReview {
	return &DeleteReview{repo: repo}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	reviewID uint,
	actingUserID uint,
) error {

	rv, err := uc.repo.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("review_not_found")
		}
		return err
	}

	if rv.FromUserID != actingUserID {
		actor, err := uc.repo.GetUserByID(ctx, actingUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrForbidden("not_review_author")
			}
			return err
		}

		if actor.UserType != models.UserTypeAdmin {
			return httperr.ErrForbidden("not_review_author")
		}
	}

	return uc.repo.DeleteWithRecompute(ctx, rv)
}
