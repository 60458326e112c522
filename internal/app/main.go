package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RozmiDan/racing_simulator/internal/entity"
	"github.com/RozmiDan/racing_simulator/internal/processor"
)

func main() {
	cfgPath := flag.String("config", entity.CfgPath, "path to races config")
	interactive := flag.Bool("i", false, "interactive mode")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	proc := processor.NewProcessor()

	if !*interactive {
		cfg, err := readConfig(*cfgPath)
		switch {
		case err == nil:
			if err := runBatch(proc, cfg, os.Stdout); err != nil {
				log.Fatal().Err(err).Msg("run races")
			}
			return
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", *cfgPath).Msg("config not found, starting interactive mode")
		default:
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("readConfig")
		}
	}

	if err := NewShell(proc, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal().Err(err).Msg("shell")
	}
}

// runBatch прогоняет все гонки из конфига
func runBatch(proc *processor.Processor, cfg entity.Config, out io.Writer) error {
	for _, rc := range cfg.Races {
		race, err := processor.NewRace(rc.Distance, rc.Weather)
		if err != nil {
			return err
		}
		log.Debug().Str("race", race.ID).Str("category", rc.Category.String()).
			Float64("distance", rc.Distance).Str("weather", rc.Weather.String()).Msg("race created")

		for _, v := range rc.Vehicles {
			if race.Has(v.Name) {
				log.Warn().Str("race", race.ID).Str("vehicle", v.Name).Msg("already registered, skipped")
				continue
			}
			if err := proc.TryRegister(race, rc.Category, v); err != nil {
				var incompatible *entity.IncompatibleVehicleError
				if errors.As(err, &incompatible) {
					log.Warn().Str("race", race.ID).Err(err).Msg("registration rejected")
					continue
				}
				return err
			}
		}

		fmt.Fprintf(out, "Race: %s, distance %.2f, weather %s\n",
			rc.Category.DisplayName(), race.Distance(), race.Weather().DisplayName())

		if err := printResults(proc, race, out); err != nil {
			return err
		}
	}
	return nil
}

// printResults выводит таблицу и победителя.
// Гонка без участников не ошибка, просто нечего печатать.
func printResults(proc *processor.Processor, race *processor.Race, out io.Writer) error {
	results, err := proc.ComputeResults(race)
	if err != nil {
		return err
	}

	winner, err := processor.PickWinner(results)
	if errors.Is(err, entity.ErrEmptyResults) {
		log.Warn().Str("race", race.ID).Msg("race has no participants")
		fmt.Fprintln(out, "No participants")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Resulting table")
	for i, r := range processor.Standings(results) {
		fmt.Fprintf(out, "%d) %s %s\n", i+1, r.Name, fmtTime(r.Time))
	}
	fmt.Fprintf(out, "Winner: %s with time %s\n", winner.Name, fmtTime(winner.Time))

	log.Info().Str("race", race.ID).Str("winner", winner.Name).Float64("time", winner.Time).Msg("race finished")
	return nil
}

func fmtTime(t float64) string {
	return fmt.Sprintf("%.2f", t)
}
