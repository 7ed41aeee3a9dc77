package service

import (
	"errors"
	"fmt"
	"strings"
)

// Таксономия ошибок сервиса. Все операции возвращают явный результат,
// за границу сервиса не выходит ни одной паники.
var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrVehicleExists    = errors.New("vehicle already exists")
	ErrIncidentNotFound = errors.New("incident not found")
	ErrIncidentInactive = errors.New("incident is not active")
	ErrInvalidStatus    = errors.New("status code out of range")
	ErrUnitRequired     = errors.New("unit identifier is required")
)

// BlockedUnitsError сообщает о машинах, снятие которых с инцидента
// заблокировано статусным гейтом. Остальная часть обновления при этом
// уже применена: это частичный отказ, а не откат.
type BlockedUnitsError struct {
	Units []string
}

func (e *BlockedUnitsError) Error() string {
	return fmt.Sprintf("units blocked from removal by status gate: %s", strings.Join(e.Units, ", "))
}

// PersistenceError - сбой записи снимка после уже примененной мутации.
// Состояние в памяти остается авторитетным до повторной записи.
type PersistenceError struct {
	Store string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist store %q: %v", e.Store, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
