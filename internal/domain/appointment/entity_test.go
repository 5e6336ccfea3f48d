package appointment

import (
	"testing"
	"time"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

func newTestAppointment(status Status) *models.Appointment {
	return &models.Appointment{
		ID:             1,
		ClientID:       10,
		ProfessionalID: 20,
		Status:         string(status),
	}
}

func TestAuthorize_ProfessionalOnlyAction(t *testing.T) {
	ap := newTestAppointment(StatusPending)

	if err := Authorize(ap, ActionConfirm, 20); err != nil {
		t.Fatalf("professional should confirm, got %v", err)
	}

	err := Authorize(ap, ActionConfirm, 10)
	if !httperr.IsBusiness(err, "professional_only") {
		t.Fatalf("client confirming: expected professional_only, got %v", err)
	}
}

func TestAuthorize_CancelEitherParty(t *testing.T) {
	ap := newTestAppointment(StatusConfirmed)

	if err := Authorize(ap, ActionCancel, 10); err != nil {
		t.Errorf("client cancel: got %v", err)
	}
	if err := Authorize(ap, ActionCancel, 20); err != nil {
		t.Errorf("professional cancel: got %v", err)
	}

	err := Authorize(ap, ActionCancel, 99)
	if !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("third party cancel: expected forbidden, got %v", err)
	}
}

func TestApply_ConfirmStampsTimestamp(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	if err := Apply(ap, ActionConfirm, now, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if ap.Status != string(StatusConfirmed) {
		t.Errorf("status = %s, want CONFIRMED", ap.Status)
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Errorf("confirmed_at = %v, want %v", ap.ConfirmedAt, now)
	}
}

func TestApply_RejectAppendsReasonToNotes(t *testing.T) {
	now := time.Now()

	ap := newTestAppointment(StatusPending)
	if err := Apply(ap, ActionReject, now, "agenda cheia"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if ap.Status != string(StatusRejected) {
		t.Errorf("status = %s, want REJECTED", ap.Status)
	}
	if ap.Notes != "Rejeitado: agenda cheia" {
		t.Errorf("notes = %q", ap.Notes)
	}
	if ap.CancelledAt == nil {
		t.Error("cancelled_at not stamped on reject")
	}

	ap = newTestAppointment(StatusPending)
	ap.Notes = "portão azul"
	if err := Apply(ap, ActionReject, now, "agenda cheia"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if ap.Notes != "portão azul | Rejeitado: agenda cheia" {
		t.Errorf("notes = %q", ap.Notes)
	}
}

func TestApply_CancelKeepsEarlierTimestamps(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	if err := Apply(ap, ActionConfirm, base, ""); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := Apply(ap, ActionStart, base.Add(time.Hour), ""); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := Apply(ap, ActionCancel, base.Add(2*time.Hour), "imprevisto"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if ap.ConfirmedAt == nil || ap.StartedAt == nil {
		t.Fatal("earlier timestamps were cleared by cancel")
	}
	if ap.CancellationReason != "imprevisto" {
		t.Errorf("cancellation_reason = %q", ap.CancellationReason)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", ap.Status)
	}
}

func TestApply_InvalidTransitionLeavesAppointmentUntouched(t *testing.T) {
	ap := newTestAppointment(StatusCompleted)

	err := Apply(ap, ActionConfirm, time.Now(), "")
	if !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}

	if ap.Status != string(StatusCompleted) {
		t.Errorf("status mutated on failed transition: %s", ap.Status)
	}
	if ap.ConfirmedAt != nil {
		t.Error("timestamp stamped on failed transition")
	}
}

func TestApply_CompleteStampsCompletedAt(t *testing.T) {
	ap := newTestAppointment(StatusInProgress)
	now := time.Now()

	if err := Apply(ap, ActionComplete, now, ""); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Fatal("completed_at not stamped")
	}
}
