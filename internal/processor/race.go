package processor

import (
	"fmt"
	"math"

	"github.com/segmentio/ksuid"

	"github.com/RozmiDan/racing_simulator/internal/entity"
	"github.com/RozmiDan/racing_simulator/internal/weather"
)

// Race — одна гонка: дистанция и погода фиксируются при создании,
// дальше только добавляются участники.
// Повторную регистрацию отсекает вызывающий код.
type Race struct {
	ID string

	distance     float64
	weather      entity.Weather
	modify       weather.Modifier
	participants []entity.Vehicle
}

func NewRace(distance float64, w entity.Weather) (*Race, error) {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidDistance, distance)
	}

	modify, err := weather.For(w)
	if err != nil {
		return nil, err
	}

	return &Race{
		ID:           ksuid.New().String(),
		distance:     distance,
		weather:      w,
		modify:       modify,
		participants: []entity.Vehicle{}, // just for not nil
	}, nil
}

func (r *Race) Distance() float64 {
	return r.distance
}

func (r *Race) Weather() entity.Weather {
	return r.weather
}

// Participants возвращает копию списка в порядке регистрации
func (r *Race) Participants() []entity.Vehicle {
	out := make([]entity.Vehicle, len(r.participants))
	copy(out, r.participants)
	return out
}

func (r *Race) Len() int {
	return len(r.participants)
}

// Has — зарегистрирован ли транспорт с таким именем
func (r *Race) Has(name string) bool {
	for _, v := range r.participants {
		if v.Name == name {
			return true
		}
	}
	return false
}
