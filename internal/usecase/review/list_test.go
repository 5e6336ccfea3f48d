package review

import (
	"context"
	"testing"

	appointmentdomain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	domain "github.com/LizServicos/home-services-api/internal/domain/review"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

func TestCheckReviewed_AbsentReturnsNil(t *testing.T) {
	repo := newFakeReviewRepo()
	seedCompletedAppointment(repo)
	uc := NewCheckReviewed(repo)

	rv, err := uc.Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if rv != nil {
		t.Fatalf("expected nil review, got %+v", rv)
	}
}

func TestCheckReviewed_ExistingReturned(t *testing.T) {
	repo := newFakeReviewRepo()
	seeded := seedReviewedAppointment(t, repo)
	uc := NewCheckReviewed(repo)

	rv, err := uc.Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if rv == nil || rv.ID != seeded.ID {
		t.Fatalf("expected review %d, got %+v", seeded.ID, rv)
	}
}

func TestGetUserStats_PartitionsByRole(t *testing.T) {
	repo := newFakeReviewRepo()
	seedCompletedAppointment(repo)

	// Segundo agendamento invertendo avaliador e avaliado.
	repo.appointments[2] = &models.Appointment{
		ID: 2, ClientID: 10, ProfessionalID: 20,
		Status: string(appointmentdomain.StatusCompleted),
	}

	create := NewCreateReview(repo, &fakeNotifier{})
	if _, err := create.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 1, FromUserID: 10, Rating: 5,
	}); err != nil {
		t.Fatalf("client review failed: %v", err)
	}
	if _, err := create.Execute(context.Background(), CreateReviewInput{
		AppointmentID: 2, FromUserID: 20, Rating: 2,
	}); err != nil {
		t.Fatalf("professional review failed: %v", err)
	}

	uc := NewGetUserStats(repo)

	// Profissional: papel primário PROFESSIONAL (a review de 5 estrelas).
	stats, err := uc.Execute(context.Background(), 20)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalReviews != 1 || stats.AverageRating != 5.0 {
		t.Errorf("professional primary stats = %v/%d", stats.AverageRating, stats.TotalReviews)
	}
	if stats.RatingDistribution[5] != 1 {
		t.Errorf("distribution = %v", stats.RatingDistribution)
	}
	if stats.SecondaryRole != domain.RoleClient {
		t.Errorf("secondary role = %s", stats.SecondaryRole)
	}

	// Cliente: papel primário CLIENT (a review de 2 estrelas).
	stats, err = uc.Execute(context.Background(), 10)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalReviews != 1 || stats.AverageRating != 2.0 {
		t.Errorf("client primary stats = %v/%d", stats.AverageRating, stats.TotalReviews)
	}
}

func TestGetUserStats_UnknownUser(t *testing.T) {
	repo := newFakeReviewRepo()
	uc := NewGetUserStats(repo)

	_, err := uc.Execute(context.Background(), 404)
	if !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}
}

func TestListReviews_ClampsPagination(t *testing.T) {
	repo := newFakeReviewRepo()
	seedReviewedAppointment(t, repo)
	uc := NewListReviews(repo)

	reviews, total, err := uc.Execute(context.Background(), domain.ListFilter{
		ToUserID: 20,
		Page:     -3,
		Limit:    9999,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(reviews) != 1 {
		t.Errorf("list = %d rows, total %d", len(reviews), total)
	}
	if repo.lastListFilter.Page != 1 {
		t.Errorf("effective page = %d, want 1", repo.lastListFilter.Page)
	}
	if repo.lastListFilter.Limit != 50 {
		t.Errorf("effective limit = %d, want cap 50", repo.lastListFilter.Limit)
	}

	if _, _, err := uc.Execute(context.Background(), domain.ListFilter{
		ToUserID: 20,
		Limit:    0,
	}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastListFilter.Limit != 10 {
		t.Errorf("effective limit = %d, want default 10", repo.lastListFilter.Limit)
	}
}
