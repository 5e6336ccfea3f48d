package appointment

import (
	"time"

	"github.com/LizServicos/home-services-api/internal/httperr"
	"github.com/LizServicos/home-services-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Authorize verifica o ator contra o clientId/professionalId gravados.
// Vem antes da checagem de status: quem não é parte recebe Forbidden,
// nunca InvalidState.
func Authorize(ap *models.Appointment, action Action, userID uint) error {
	rule, ok := RuleFor(action)
	if !ok {
		return httperr.ErrInvalidState("unknown_action")
	}

	switch rule.Actor {
	case ActorProfessional:
		if ap.ProfessionalID != userID {
			return httperr.ErrForbidden("professional_only")
		}
	case ActorEitherParty:
		if ap.ClientID != userID && ap.ProfessionalID != userID {
			return httperr.ErrForbidden("not_a_party")
		}
	}

	return nil
}

// Apply muda o status e carimba os timestamps conforme a tabela.
// Timestamps de etapas já passadas permanecem gravados.
func Apply(ap *models.Appointment, action Action, now time.Time, reason string) error {
	rule, ok := RuleFor(action)
	if !ok {
		return httperr.ErrInvalidState("unknown_action")
	}

	if err := CanApply(Status(ap.Status), action); err != nil {
		return err
	}

	ap.Status = string(rule.To)

	switch action {
	case ActionConfirm:
		ap.ConfirmedAt = &now
	case ActionReject:
		ap.CancelledAt = &now
		if reason != "" {
			ap.Notes = appendRejectionReason(ap.Notes, reason)
		}
	case ActionStart:
		ap.StartedAt = &now
	case ActionComplete:
		ap.CompletedAt = &now
	case ActionCancel:
		ap.CancelledAt = &now
		ap.CancellationReason = reason
	}

	return nil
}

func appendRejectionReason(notes, reason string) string {
	if notes == "" {
		return "Rejeitado: " + reason
	}
	return notes + " | Rejeitado: " + reason
}
