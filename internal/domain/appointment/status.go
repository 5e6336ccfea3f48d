package appointment

import "github.com/LizServicos/home-services-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusOnWay      Status = "ON_WAY"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
)

func InitialStatus() Status {
	return StatusPending
}

// Estados terminais: nenhuma transição sai deles.
func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Actions
// ===============================

type Action string

const (
	ActionConfirm   Action = "confirm"
	ActionReject    Action = "reject"
	ActionMarkOnWay Action = "mark_on_way"
	ActionStart     Action = "start"
	ActionComplete  Action = "complete"
	ActionCancel    Action = "cancel"
)

type Actor string

const (
	ActorProfessional Actor = "professional"
	ActorEitherParty  Actor = "either_party"
)

type Rule struct {
	From  []Status
	Actor Actor
	To    Status
}

// Tabela de transições enumerada como dado: implementação e testes
// leem a mesma tabela em vez de if-chains espalhados.
var transitions = map[Action]Rule{
	ActionConfirm:   {From: []Status{StatusPending}, Actor: ActorProfessional, To: StatusConfirmed},
	ActionReject:    {From: []Status{StatusPending}, Actor: ActorProfessional, To: StatusRejected},
	ActionMarkOnWay: {From: []Status{StatusConfirmed}, Actor: ActorProfessional, To: StatusOnWay},
	ActionStart:     {From: []Status{StatusOnWay, StatusConfirmed}, Actor: ActorProfessional, To: StatusInProgress},
	ActionComplete:  {From: []Status{StatusInProgress}, Actor: ActorProfessional, To: StatusCompleted},
	ActionCancel: {
		From:  []Status{StatusPending, StatusConfirmed, StatusOnWay, StatusInProgress},
		Actor: ActorEitherParty,
		To:    StatusCancelled,
	},
}

func RuleFor(action Action) (Rule, bool) {
	rule, ok := transitions[action]
	return rule, ok
}

// ===============================
// Validations
// ===============================

// CanApply define se a ação é legal a partir do status atual.
func CanApply(current Status, action Action) error {
	rule, ok := transitions[action]
	if !ok {
		return httperr.ErrInvalidState("unknown_action")
	}

	for _, s := range rule.From {
		if s == current {
			return nil
		}
	}

	return httperr.ErrInvalidState("invalid_state")
}
