package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ===============================
// Erros do domínio de agenda
// ===============================

// ValidationError indica entrada malformada (intervalo invertido,
// duração não positiva, referência inexistente). Nunca é retentável.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func ErrValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError indica que o horário pedido deixou de estar livre
// entre a exibição dos slots e a gravação.
type ConflictError struct {
	Code string
}

func (e *ConflictError) Error() string {
	return e.Code
}

func ErrConflict(code string) error {
	return &ConflictError{Code: code}
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// StoreError envolve falhas de I/O do banco. O domínio nunca retenta;
// retry é responsabilidade da borda.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func ErrStore(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// PartialFailure é exclusivo do escritor em lote: parte das datas foi
// gravada, parte falhou. Aplicação parcial silenciosa não é aceitável,
// então o chamador recebe a lista exata para remediação.
type PartialFailure struct {
	FailedDates []string
	Err         error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("bulk apply failed for dates [%s]: %v",
		strings.Join(e.FailedDates, ", "), e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

func IsPartialFailure(err error) bool {
	var pf *PartialFailure
	return errors.As(err, &pf)
}
