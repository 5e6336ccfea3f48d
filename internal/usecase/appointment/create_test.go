package appointment

import (
	"context"
	"strings"
	"testing"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

func seedCatalogAndAddress(repo *fakeAppointmentRepo) {
	repo.services[1] = &models.ProfessionalSubcategory{
		ID:             1,
		ProfessionalID: 20,
		SubcategoryID:  5,
		Price:          150.0,
	}
	repo.addresses[3] = &models.Address{ID: 3, UserID: 10}
}

func TestCreateAppointment_FreezesCatalogPrice(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedCatalogAndAddress(repo)
	uc := NewCreateAppointment(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       10,
		ProfessionalID: 20,
		SubcategoryID:  5,
		AddressID:      3,
		Date:           "2026-04-10",
		Time:           "14:30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if ap.Price != 150.0 {
		t.Errorf("price = %v, want catalog price 150", ap.Price)
	}
	if ap.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want PENDING", ap.Status)
	}
	if !strings.HasPrefix(ap.OrderNumber, "LIZ") {
		t.Errorf("order number = %q", ap.OrderNumber)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d appointments", len(repo.created))
	}
}

func TestCreateAppointment_ServiceNotOffered(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedCatalogAndAddress(repo)
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       10,
		ProfessionalID: 20,
		SubcategoryID:  999,
		AddressID:      3,
		Date:           "2026-04-10",
		Time:           "14:30",
	})
	if !httperr.IsBusiness(err, "service_not_offered") {
		t.Fatalf("expected service_not_offered, got %v", err)
	}
}

func TestCreateAppointment_AddressMustBelongToClient(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedCatalogAndAddress(repo)
	repo.addresses[4] = &models.Address{ID: 4, UserID: 55}
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       10,
		ProfessionalID: 20,
		SubcategoryID:  5,
		AddressID:      4,
		Date:           "2026-04-10",
		Time:           "14:30",
	})
	if !httperr.IsBusiness(err, "address_not_found") {
		t.Fatalf("expected address_not_found, got %v", err)
	}
}

func TestCreateAppointment_InvalidDateAndTime(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedCatalogAndAddress(repo)
	uc := NewCreateAppointment(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       10,
		ProfessionalID: 20,
		SubcategoryID:  5,
		AddressID:      3,
		Date:           "10/04/2026",
		Time:           "14:30",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       10,
		ProfessionalID: 20,
		SubcategoryID:  5,
		AddressID:      3,
		Date:           "2026-04-10",
		Time:           "2pm",
	})
	if !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}

func TestListAppointments_ClampsPagination(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusPending)
	uc := NewListAppointments(repo)

	if _, _, err := uc.Execute(context.Background(), domain.ListFilter{
		UserID: 10,
		Page:   0,
		Limit:  0,
	}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastListFilter.Page != 1 || repo.lastListFilter.Limit != 20 {
		t.Errorf("effective filter = page %d limit %d, want 1/20",
			repo.lastListFilter.Page, repo.lastListFilter.Limit)
	}

	if _, _, err := uc.Execute(context.Background(), domain.ListFilter{
		UserID: 10,
		Page:   2,
		Limit:  9999,
	}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastListFilter.Limit != 50 {
		t.Errorf("effective limit = %d, want cap 50", repo.lastListFilter.Limit)
	}
}

func TestGetAppointment_PartyOnly(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusPending)
	uc := NewGetAppointment(repo)

	if _, err := uc.Execute(context.Background(), 1, 10); err != nil {
		t.Errorf("client read: %v", err)
	}
	if _, err := uc.Execute(context.Background(), 1, 20); err != nil {
		t.Errorf("professional read: %v", err)
	}

	_, err := uc.Execute(context.Background(), 1, 99)
	if !httperr.IsBusiness(err, "not_a_party") {
		t.Fatalf("expected not_a_party, got %v", err)
	}
}
