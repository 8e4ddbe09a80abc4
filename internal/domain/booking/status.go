package booking

import "github.com/irisagenda/agenda-api/internal/httperr"

// ===============================
// Status da reserva
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// InitialStatus: reserva pública nasce pendente, reserva criada pela
// equipe nasce confirmada. Transições são sempre manuais.
func InitialStatus(staff bool) Status {
	if staff {
		return StatusConfirmed
	}
	return StatusPending
}

// CanConfirm define se uma reserva pode ser confirmada
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se uma reserva pode ser cancelada
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se uma reserva pode ser concluída
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
