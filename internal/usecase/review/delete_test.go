package review

import (
	"context"
	"testing"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

func seedReviewedAppointment(t *testing.T, repo *fakeReviewRepo) *models.Review {
	t.Helper()
	seedCompletedAppointment(repo)

	create := NewCreateReview(repo, &fakeNotifier{})
	rv, err := create.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 1,
		FromUserID:    10,
		Rating:        5,
	})
	if err != nil {
		t.Fatalf("seed review failed: %v", err)
	}
	return rv
}

func TestDeleteReview_AuthorResetsAggregates(t *testing.T) {
	repo := newFakeReviewRepo()
	rv := seedReviewedAppointment(t, repo)

	if repo.profiles[20].ReviewCount != 1 {
		t.Fatalf("seed aggregates wrong: %d", repo.profiles[20].ReviewCount)
	}

	uc := NewDeleteReview(repo)
	if err := uc.Execute(context.Background(), rv.ID, 10); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(repo.reviews) != 0 {
		t.Errorf("review still stored")
	}
	if repo.profiles[20].ReviewCount != 0 || repo.profiles[20].RatingAvg != 0 {
		t.Errorf("aggregates not recomputed after delete: %v/%d",
			repo.profiles[20].RatingAvg, repo.profiles[20].ReviewCount)
	}
}

func TestDeleteReview_AdminAllowed(t *testing.T) {
	repo := newFakeReviewRepo()
	rv := seedReviewedAppointment(t, repo)
	repo.users[30] = &models.User{ID: 30, UserType: models.UserTypeAdmin}

	uc := NewDeleteReview(repo)
	if err := uc.Execute(context.Background(), rv.ID, 30); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestDeleteReview_NonAuthorForbidden(t *testing.T) {
	repo := newFakeReviewRepo()
	rv := seedReviewedAppointment(t, repo)

	uc := NewDeleteReview(repo)
	err := uc.Execute(context.Background(), rv.ID, 20)
	if !httperr.IsBusiness(err, "not_review_author") {
		t.Fatalf("expected not_review_author, got %v", err)
	}

	if len(repo.reviews) != 1 {
		t.Error("review deleted despite forbidden")
	}
}

func TestDeleteReview_NotFound(t *testing.T) {
	repo := newFakeReviewRepo()
	uc := NewDeleteReview(repo)

	err := uc.Execute(context.Background(), 404, 10)
	if !httperr.IsBusiness(err, "review_not_found") {
		t.Fatalf("expected review_not_found, got %v", err)
	}
}
