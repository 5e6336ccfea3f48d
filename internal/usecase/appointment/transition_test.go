package appointment

import (
	"context"
	"testing"

	"gorm.io/gorm"

	domain "github.com/LizServicos/home-services-api/internal/domain/appointment"
	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
	"github.com/LizServicos/home-services-api/internal/notification"
)

// ======================================================
// FAKES
// ======================================================

type fakeAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	services     map[uint]*models.ProfessionalSubcategory
	addresses    map[uint]*models.Address

	savedActions   []domain.Action
	created        []*models.Appointment
	saveErr        error
	beforeSave     func()
	lastListFilter domain.ListFilter
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: map[uint]*models.Appointment{},
		services:     map[uint]*models.ProfessionalSubcategory{},
		addresses:    map[uint]*models.Address{},
	}
}

func (f *fakeAppointmentRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

// SaveTransition espelha o contrato do repositório real: o status de
// origem é re-checado contra a linha armazenada antes de gravar.
func (f *fakeAppointmentRepo) SaveTransition(_ context.Context, ap *models.Appointment, action domain.Action) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.beforeSave != nil {
		f.beforeSave()
	}
	stored, ok := f.appointments[ap.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if err := domain.CanApply(domain.Status(stored.Status), action); err != nil {
		return err
	}
	f.appointments[ap.ID] = ap
	f.savedActions = append(f.savedActions, action)
	return nil
}

func (f *fakeAppointmentRepo) GetProfessionalService(_ context.Context, professionalID, subcategoryID uint) (*models.ProfessionalSubcategory, error) {
	for _, s := range f.services {
		if s.ProfessionalID == professionalID && s.SubcategoryID == subcategoryID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppointmentRepo) GetAddressForUser(_ context.Context, addressID, userID uint) (*models.Address, error) {
	addr, ok := f.addresses[addressID]
	if !ok || addr.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return addr, nil
}

func (f *fakeAppointmentRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(f.appointments) + 1)
	f.appointments[ap.ID] = ap
	f.created = append(f.created, ap)
	return nil
}

func (f *fakeAppointmentRepo) ListForUser(_ context.Context, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	f.lastListFilter = filter
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID != filter.UserID && ap.ProfessionalID != filter.UserID {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppointmentRepo) CountCompletedForClient(_ context.Context, clientID uint) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.ClientID == clientID && ap.Status == string(domain.StatusCompleted) {
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*fakeAppointmentRepo)(nil)

type fakeNotifier struct {
	events []notification.Event
}

func (f *fakeNotifier) Dispatch(ev notification.Event) {
	f.events = append(f.events, ev)
}

func seedAppointment(repo *fakeAppointmentRepo, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:             1,
		OrderNumber:    "LIZ1700000000000001",
		ClientID:       10,
		ProfessionalID: 20,
		Status:         string(status),
	}
	repo.appointments[ap.ID] = ap
	return ap
}

// ======================================================
// TESTS
// ======================================================

func TestTransition_ConfirmHappyPath(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusPending)
	notify := &fakeNotifier{}

	uc := NewTransitionAppointment(repo, notify)

	ap, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   20,
		Action:        domain.ActionConfirm,
	})
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want CONFIRMED", ap.Status)
	}
	if ap.ConfirmedAt == nil {
		t.Error("confirmed_at not stamped")
	}
	if len(repo.savedActions) != 1 || repo.savedActions[0] != domain.ActionConfirm {
		t.Errorf("saved actions = %v", repo.savedActions)
	}
	if len(notify.events) != 1 || notify.events[0].UserID != 10 {
		t.Errorf("expected one notification to client, got %+v", notify.events)
	}
}

func TestTransition_NotFound(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := NewTransitionAppointment(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 77,
		ActorUserID:   20,
		Action:        domain.ActionConfirm,
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestTransition_ForbiddenBeforeInvalidState(t *testing.T) {
	// Agendamento em estado errado E ator errado: Forbidden vence.
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusCompleted)
	uc := NewTransitionAppointment(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   99,
		Action:        domain.ActionConfirm,
	})
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestTransition_InvalidStateNotPersisted(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusCompleted)
	notify := &fakeNotifier{}
	uc := NewTransitionAppointment(repo, notify)

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   20,
		Action:        domain.ActionConfirm,
	})
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	if len(repo.savedActions) != 0 {
		t.Error("failed transition reached the repository")
	}
	if len(notify.events) != 0 {
		t.Error("failed transition dispatched a notification")
	}
	if repo.appointments[1].Status != string(domain.StatusCompleted) {
		t.Errorf("stored status mutated: %s", repo.appointments[1].Status)
	}
}

func TestTransition_CompleteReachesRepositoryWithAction(t *testing.T) {
	// O repositório incrementa services_completed quando a ação é
	// complete; o use case precisa repassá-la intacta.
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusInProgress)
	uc := NewTransitionAppointment(repo, &fakeNotifier{})

	ap, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   20,
		Action:        domain.ActionComplete,
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if ap.Status != string(domain.StatusCompleted) {
		t.Errorf("status = %s, want COMPLETED", ap.Status)
	}
	if len(repo.savedActions) != 1 || repo.savedActions[0] != domain.ActionComplete {
		t.Errorf("saved actions = %v, want [complete]", repo.savedActions)
	}
}

func TestTransition_CancelNotifiesCounterparty(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusConfirmed)
	notify := &fakeNotifier{}
	uc := NewTransitionAppointment(repo, notify)

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   10, // cliente cancela
		Action:        domain.ActionCancel,
		Reason:        "mudança de planos",
	})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if len(notify.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(notify.events))
	}
	if notify.events[0].UserID != 20 {
		t.Errorf("notification target = %d, want professional 20", notify.events[0].UserID)
	}
	if repo.appointments[1].CancellationReason != "mudança de planos" {
		t.Errorf("cancellation_reason = %q", repo.appointments[1].CancellationReason)
	}
}

func TestTransition_ConcurrentWinnerBlocksStaleTransition(t *testing.T) {
	// Duas transições partem do mesmo PENDING: o cancel grava primeiro,
	// o confirm chega com estado velho e não pode tirar o agendamento
	// do estado terminal.
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusPending)
	notify := &fakeNotifier{}
	uc := NewTransitionAppointment(repo, notify)

	repo.beforeSave = func() {
		repo.beforeSave = nil
		if _, err := uc.Execute(context.Background(), TransitionInput{
			AppointmentID: 1,
			ActorUserID:   10,
			Action:        domain.ActionCancel,
		}); err != nil {
			t.Fatalf("concurrent cancel failed: %v", err)
		}
	}

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   20,
		Action:        domain.ActionConfirm,
	})
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("stale confirm: expected invalid_state, got %v", err)
	}

	if repo.appointments[1].Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED preserved", repo.appointments[1].Status)
	}
	if len(repo.savedActions) != 1 || repo.savedActions[0] != domain.ActionCancel {
		t.Errorf("saved actions = %v, want only [cancel]", repo.savedActions)
	}
}

func TestTransition_RejectRequiresProfessional(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedAppointment(repo, domain.StatusPending)
	uc := NewTransitionAppointment(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), TransitionInput{
		AppointmentID: 1,
		ActorUserID:   10,
		Action:        domain.ActionReject,
		Reason:        "fora da área",
	})
	if !httperr.IsBusiness(err, "professional_only") {
		t.Fatalf("expected professional_only, got %v", err)
	}
}
