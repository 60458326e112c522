package weather

import (
	"fmt"

	"github.com/RozmiDan/racing_simulator/internal/entity"
)

// Modifier корректирует базовое время под погоду
type Modifier func(baseTime float64) float64

var multipliers = map[entity.Weather]float64{
	entity.WeatherSunny: 1.00,
	entity.WeatherRainy: 1.10,
	entity.WeatherWindy: 1.05,
	entity.WeatherFoggy: 1.10,
}

// Multiplier возвращает множитель времени для погоды
func Multiplier(w entity.Weather) (float64, error) {
	m, ok := multipliers[w]
	if !ok {
		return 0, fmt.Errorf("%w: %q", entity.ErrInvalidWeather, w)
	}
	return m, nil
}

// For выбирает модификатор один раз на гонку
func For(w entity.Weather) (Modifier, error) {
	m, err := Multiplier(w)
	if err != nil {
		return nil, err
	}
	if m == 1 {
		return func(baseTime float64) float64 { return baseTime }, nil
	}
	return func(baseTime float64) float64 { return baseTime * m }, nil
}
