package vehicle

import (
	"fmt"
	"strings"

	"github.com/RozmiDan/racing_simulator/internal/entity"
)

const (
	SevenLeagueBoots = "Seven-League Boots"
	PumpkinCarriage  = "Pumpkin Carriage"
	ChickenLeggedHut = "Chicken-Legged Hut"
	Centaur          = "Centaur"

	BabaYagaMortar = "Baba Yaga Mortar"
	MagicBroom     = "Magic Broom"
	FlyingCarpet   = "Flying Carpet"
	FlyingShip     = "Flying Ship"
)

func ground(name string, speed, restInterval, baseRest float64) entity.Vehicle {
	return entity.Vehicle{
		Name:             name,
		Kind:             entity.KindGround,
		Speed:            speed,
		RestInterval:     restInterval,
		BaseRestDuration: baseRest,
	}
}

func air(name string, speed float64, rule entity.Rule) entity.Vehicle {
	return entity.Vehicle{
		Name:  name,
		Kind:  entity.KindAir,
		Speed: speed,
		Rule:  rule,
	}
}

func groundSet() []entity.Vehicle {
	return []entity.Vehicle{
		ground(SevenLeagueBoots, 15, 5, 1),
		ground(PumpkinCarriage, 10, 4, 1.5),
		ground(ChickenLeggedHut, 8, 6, 2),
		ground(Centaur, 18, 7, 1),
	}
}

func airSet() []entity.Vehicle {
	return []entity.Vehicle{
		air(BabaYagaMortar, 12, entity.RuleMortar),
		air(MagicBroom, 20, entity.RuleBroom),
		air(FlyingCarpet, 25, entity.RuleCarpet),
		air(FlyingShip, 22, entity.RuleShip),
	}
}

// For возвращает список транспорта для типа гонки.
// Порядок фиксирован: сначала наземный, потом воздушный. Каждый вызов
// отдает новый срез.
func For(category entity.Category) ([]entity.Vehicle, error) {
	switch category {
	case entity.CategoryGround:
		return groundSet(), nil
	case entity.CategoryAir:
		return airSet(), nil
	case entity.CategoryMixed:
		return All(), nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidCategory, category)
	}
}

// All — весь каталог
func All() []entity.Vehicle {
	return append(groundSet(), airSet()...)
}

// Lookup ищет транспорт по имени, регистр и разделители не важны
func Lookup(name string) (entity.Vehicle, error) {
	key := normalize(name)
	for _, v := range All() {
		if normalize(v.Name) == key {
			return v, nil
		}
	}
	return entity.Vehicle{}, fmt.Errorf("%w: %q", entity.ErrUnknownVehicle, name)
}

var separators = strings.NewReplacer(" ", "", "-", "", "_", "", "'", "")

func normalize(name string) string {
	return separators.Replace(strings.ToLower(strings.TrimSpace(name)))
}
