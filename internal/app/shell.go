package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RozmiDan/racing_simulator/internal/entity"
	"github.com/RozmiDan/racing_simulator/internal/processor"
	"github.com/RozmiDan/racing_simulator/internal/vehicle"
)

// errQuit — пользователь ввел q или закончился ввод
var errQuit = errors.New("quit")

// Shell — интерактивный режим: меню, ввод и повтор при ошибке.
// Сама логика гонки в processor, здесь только диалог.
type Shell struct {
	proc *processor.Processor
	sc   *bufio.Scanner
	out  io.Writer
}

func NewShell(proc *processor.Processor, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		proc: proc,
		sc:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run крутит гонки, пока пользователь не откажется от новой
func (s *Shell) Run() error {
	for {
		err := s.playRace()
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.askAgain()
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "Exiting.")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Shell) playRace() error {
	category, err := s.askCategory()
	if err != nil {
		return err
	}
	distance, err := s.askDistance()
	if err != nil {
		return err
	}
	w, err := s.askWeather()
	if err != nil {
		return err
	}

	race, err := processor.NewRace(distance, w)
	if err != nil {
		return err
	}
	log.Debug().Str("race", race.ID).Str("category", category.String()).
		Float64("distance", distance).Str("weather", w.String()).Msg("race created")

	if err := s.register(race, category); err != nil {
		return err
	}

	return printResults(s.proc, race, s.out)
}

// readLine возвращает очередную строку в нижнем регистре.
// q и конец ввода дают errQuit.
func (s *Shell) readLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.ToLower(strings.TrimSpace(s.sc.Text()))
	if line == "q" {
		return "", errQuit
	}
	return line, nil
}

func (s *Shell) askCategory() (entity.Category, error) {
	for {
		fmt.Fprintln(s.out, "Welcome to the racing simulator!")
		fmt.Fprintln(s.out, "Choose the race type:")
		for i, c := range entity.Categories() {
			fmt.Fprintf(s.out, "%d) %s\n", i+1, c.DisplayName())
		}
		fmt.Fprintln(s.out, "q) Quit")

		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			if c, err := entity.CategoryFromMenu(n); err == nil {
				return c, nil
			}
		}
		fmt.Fprintf(s.out, "Error: enter a value from 1 to %d or q.\n", len(entity.Categories()))
	}
}

func (s *Shell) askDistance() (float64, error) {
	for {
		fmt.Fprintln(s.out, "Enter the race distance or q to quit:")

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(line, 64)
		if err == nil && d > 0 && !math.IsInf(d, 1) {
			return d, nil
		}
		fmt.Fprintln(s.out, "Error: enter a valid distance.")
	}
}

func (s *Shell) askWeather() (entity.Weather, error) {
	for {
		fmt.Fprintln(s.out, "Choose the weather:")
		for i, w := range entity.WeatherConditions() {
			fmt.Fprintf(s.out, "%d) %s\n", i+1, w.DisplayName())
		}
		fmt.Fprintln(s.out, "q) Quit")

		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			if w, err := entity.WeatherFromMenu(n); err == nil {
				return w, nil
			}
		}
		fmt.Fprintf(s.out, "Error: enter a value from 1 to %d.\n", len(entity.WeatherConditions()))
	}
}

// register — цикл регистрации, s запускает гонку
func (s *Shell) register(race *processor.Race, category entity.Category) error {
	available, err := vehicle.For(category)
	if err != nil {
		return err
	}

	for {
		s.printAvailable(available, race)
		fmt.Fprintln(s.out, "Enter a vehicle number to register, s to start the race, q to quit:")

		line, err := s.readLine()
		if err != nil {
			return err
		}

		if line == "s" {
			if race.Len() > 0 {
				return nil
			}
			fmt.Fprintln(s.out, "Error: register at least one participant.")
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(available) {
			fmt.Fprintln(s.out, "Error: enter an action from the list.")
			continue
		}

		v := available[n-1]
		if race.Has(v.Name) {
			fmt.Fprintln(s.out, "Error: this vehicle is already registered.")
			continue
		}
		if err := s.proc.TryRegister(race, category, v); err != nil {
			log.Debug().Str("race", race.ID).Err(err).Msg("registration rejected")
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		log.Debug().Str("race", race.ID).Str("vehicle", v.Name).Msg("registered")
	}
}

func (s *Shell) printAvailable(available []entity.Vehicle, race *processor.Race) {
	fmt.Fprintln(s.out, "Available vehicles:")
	for i, v := range available {
		mark := ""
		if race.Has(v.Name) {
			mark = " (registered)"
		}
		fmt.Fprintf(s.out, "%d) %s%s\n", i+1, v.Name, mark)
	}
	fmt.Fprintln(s.out, "s) Finish registration and start the race")
	fmt.Fprintln(s.out, "q) Quit")

	if race.Len() > 0 {
		fmt.Fprintln(s.out, "Registered vehicles:")
		for _, v := range race.Participants() {
			fmt.Fprintf(s.out, "- %s\n", v.Name)
		}
	}
}

func (s *Shell) askAgain() (bool, error) {
	for {
		fmt.Fprintln(s.out, "Start a new race? (y/n)")

		line, err := s.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(s.out, "Error: enter y or n.")
	}
}
