package vehicle

import (
	"fmt"
	"math"

	"github.com/RozmiDan/racing_simulator/internal/entity"
)

// BaseTime — время прохождения дистанции без учета погоды
func BaseTime(v entity.Vehicle, distance float64) (float64, error) {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return 0, fmt.Errorf("%w: %v", entity.ErrInvalidDistance, distance)
	}

	if !(v.Speed > 0) {
		return 0, fmt.Errorf("%w: %s speed %v", entity.ErrInvalidVehicle, v.Name, v.Speed)
	}

	switch v.Kind {
	case entity.KindGround:
		if !(v.RestInterval > 0) || v.BaseRestDuration < 0 {
			return 0, fmt.Errorf("%w: %s rest %v/%v", entity.ErrInvalidVehicle, v.Name, v.RestInterval, v.BaseRestDuration)
		}
		return GroundTime(v.Speed, v.RestInterval, v.BaseRestDuration, distance), nil
	case entity.KindAir:
		a, err := AccelerationFactor(v.Rule, distance)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", v.Name, err)
		}
		return AirTime(v.Speed, a, distance), nil
	default:
		return 0, fmt.Errorf("%w: %s (%s)", entity.ErrUnknownVehicleKind, v.Name, v.Kind)
	}
}

// GroundTime считает время с остановками.
// После каждого полного отрезка speed*restInterval следует отдых
// baseRest*ln(k+1) + baseRest, k считается с нуля. После последнего
// отрезка отдыха нет. Сумма ln(k+1) по n остановкам равна ln(n!).
func GroundTime(speed, restInterval, baseRest, distance float64) float64 {
	segment := speed * restInterval
	legs := math.Max(math.Ceil(distance/segment)-1, 0)

	rest, _ := math.Lgamma(legs + 1)
	total := legs*restInterval + legs*baseRest + baseRest*rest

	// на больших дистанциях legs*segment округляется
	tail := math.Min(math.Max(distance-legs*segment, 0), segment)
	return total + tail/speed
}

// AirTime: разгон с коэффициентом a до крейсерской скорости, дальше
// равномерное движение
func AirTime(speed, a, distance float64) float64 {
	finalSpeed := speed
	timeToFinal := finalSpeed / a
	distanceToFinal := finalSpeed * finalSpeed / (2 * a)

	if distance <= distanceToFinal {
		return math.Sqrt(2 * distance / a)
	}

	remaining := distance - distanceToFinal
	return timeToFinal + remaining/finalSpeed
}

// AccelerationFactor: до порога правила коэффициент равен 1
func AccelerationFactor(rule entity.Rule, distance float64) (float64, error) {
	switch rule {
	case entity.RuleMortar:
		if distance > 100 {
			return 1 + 0.01*(distance-100)/100, nil
		}
	case entity.RuleBroom:
		if distance > 150 {
			return math.Pow(distance/150, 0.1), nil
		}
	case entity.RuleCarpet:
		if distance > 120 {
			return 1 + math.Log(distance/120), nil
		}
	case entity.RuleShip:
		if distance > 200 {
			return 1 + 0.0001*math.Pow(distance-200, 2), nil
		}
	default:
		return 0, fmt.Errorf("%w: acceleration rule %d", entity.ErrUnknownVehicleKind, rule)
	}
	return 1.0, nil
}
