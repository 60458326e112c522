package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RozmiDan/racing_simulator/internal/entity"
	"github.com/RozmiDan/racing_simulator/internal/vehicle"
)

// rawConfig — промежуточный тип, точно повторяет JSON.
// Тип гонки и погода разбираются через UnmarshalText.
type rawConfig struct {
	Races []rawRace `json:"races"`
}

type rawRace struct {
	Category entity.Category `json:"category"`
	Distance float64         `json:"distance"`
	Weather  entity.Weather  `json:"weather"`
	Vehicles []string        `json:"vehicles"`
}

// readConfig читает JSON и конвертит строки в типы
func readConfig(path string) (entity.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Config{}, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (entity.Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return entity.Config{}, err
	}
	if len(raw.Races) == 0 {
		return entity.Config{}, fmt.Errorf("config has no races")
	}

	cfg := entity.Config{Races: make([]entity.RaceConfig, 0, len(raw.Races))}
	for i, rr := range raw.Races {
		rc, err := convertRace(rr)
		if err != nil {
			return entity.Config{}, fmt.Errorf("race #%d: %w", i+1, err)
		}
		cfg.Races = append(cfg.Races, rc)
	}
	return cfg, nil
}

func convertRace(rr rawRace) (entity.RaceConfig, error) {
	// пустое поле в JSON не вызывает UnmarshalText
	if !rr.Category.Valid() {
		return entity.RaceConfig{}, fmt.Errorf("%w: %q", entity.ErrInvalidCategory, rr.Category)
	}
	if !rr.Weather.Valid() {
		return entity.RaceConfig{}, fmt.Errorf("%w: %q", entity.ErrInvalidWeather, rr.Weather)
	}
	if !(rr.Distance > 0) {
		return entity.RaceConfig{}, fmt.Errorf("%w: %v", entity.ErrInvalidDistance, rr.Distance)
	}

	vehicles := make([]entity.Vehicle, 0, len(rr.Vehicles))
	for _, name := range rr.Vehicles {
		v, err := vehicle.Lookup(name)
		if err != nil {
			return entity.RaceConfig{}, err
		}
		vehicles = append(vehicles, v)
	}

	return entity.RaceConfig{
		Category: rr.Category,
		Distance: rr.Distance,
		Weather:  rr.Weather,
		Vehicles: vehicles,
	}, nil
}
