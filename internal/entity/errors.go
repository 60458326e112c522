package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory    = errors.New("invalid race category")
	ErrInvalidWeather     = errors.New("invalid weather condition")
	ErrInvalidDistance    = errors.New("distance must be a positive number")
	ErrUnknownVehicle     = errors.New("unknown vehicle")
	ErrUnknownVehicleKind = errors.New("unknown vehicle kind")
	ErrInvalidVehicle     = errors.New("vehicle constants must be positive")
	ErrEmptyResults       = errors.New("no results to pick a winner from")
)

// IncompatibleVehicleError — транспорт не подходит под тип гонки.
// Регистрация при этом не выполняется.
type IncompatibleVehicleError struct {
	Name     string
	Category Category
}

func (e *IncompatibleVehicleError) Error() string {
	return fmt.Sprintf("%s can't take part in a %s race", e.Name, e.Category)
}
