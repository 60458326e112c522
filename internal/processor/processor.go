package processor

import (
	"fmt"
	"sort"

	"github.com/RozmiDan/racing_simulator/internal/entity"
	"github.com/RozmiDan/racing_simulator/internal/vehicle"
)

type Processor struct {
	rules map[entity.Category]func(entity.Vehicle) bool
}

func NewProcessor() *Processor {
	p := &Processor{
		rules: make(map[entity.Category]func(entity.Vehicle) bool),
	}

	// Регистрируем правила допуска по типу гонки
	p.rules[entity.CategoryGround] = entity.Vehicle.IsGround
	p.rules[entity.CategoryAir] = entity.Vehicle.IsAir
	p.rules[entity.CategoryMixed] = func(entity.Vehicle) bool { return true }

	return p
}

// Admit проверяет, может ли транспорт участвовать в гонке данного типа
func (p *Processor) Admit(category entity.Category, v entity.Vehicle) error {
	rule, found := p.rules[category]
	if !found {
		return fmt.Errorf("%w: %q", entity.ErrInvalidCategory, category)
	}
	if !rule(v) {
		return &entity.IncompatibleVehicleError{Name: v.Name, Category: category}
	}
	return nil
}

// TryRegister добавляет участника, если он прошел проверку.
// При ошибке гонка не меняется.
func (p *Processor) TryRegister(r *Race, category entity.Category, v entity.Vehicle) error {
	if err := p.Admit(category, v); err != nil {
		return err
	}
	r.participants = append(r.participants, v)
	return nil
}

// ComputeResults считает время каждого участника в порядке регистрации.
// Погода применяется один раз, после базовой формулы.
func (p *Processor) ComputeResults(r *Race) (entity.ResultSet, error) {
	results := make(entity.ResultSet, 0, len(r.participants))
	for _, v := range r.participants {
		base, err := vehicle.BaseTime(v, r.distance)
		if err != nil {
			return nil, fmt.Errorf("race %s: %w", r.ID, err)
		}
		results = results.Set(v.Name, r.modify(base))
	}
	return results, nil
}

// PickWinner — участник с минимальным временем, при равенстве первый
func PickWinner(results entity.ResultSet) (entity.Result, error) {
	if len(results) == 0 {
		return entity.Result{}, entity.ErrEmptyResults
	}

	winner := results[0]
	for _, r := range results[1:] {
		if r.Time < winner.Time {
			winner = r
		}
	}
	return winner, nil
}

// Standings — итоговая таблица по возрастанию времени.
// При равенстве сохраняется порядок регистрации.
func Standings(results entity.ResultSet) []entity.Result {
	table := make([]entity.Result, len(results))
	copy(table, results)

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Time < table[j].Time
	})

	return table
}
