package entity

import (
	"fmt"
	"strings"
)

// Category — тип гонки
type Category string

const (
	CategoryGround Category = "ground"
	CategoryAir    Category = "air"
	CategoryMixed  Category = "mixed"
)

// Categories в порядке пунктов меню
func Categories() []Category {
	return []Category{CategoryGround, CategoryAir, CategoryMixed}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryGround, CategoryAir, CategoryMixed:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

func (c Category) DisplayName() string {
	switch c {
	case CategoryGround:
		return "Ground"
	case CategoryAir:
		return "Air"
	case CategoryMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// ParseCategory принимает имя без учета регистра
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// UnmarshalText позволяет читать тип гонки прямо из JSON
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryFromMenu — номер пункта меню, начиная с 1
func CategoryFromMenu(n int) (Category, error) {
	all := Categories()
	if n < 1 || n > len(all) {
		return "", fmt.Errorf("%w: menu item %d", ErrInvalidCategory, n)
	}
	return all[n-1], nil
}

// Weather — погодные условия на всю гонку
type Weather string

const (
	WeatherSunny Weather = "sunny"
	WeatherRainy Weather = "rainy"
	WeatherWindy Weather = "windy"
	WeatherFoggy Weather = "foggy"
)

func WeatherConditions() []Weather {
	return []Weather{WeatherSunny, WeatherRainy, WeatherWindy, WeatherFoggy}
}

func (w Weather) Valid() bool {
	switch w {
	case WeatherSunny, WeatherRainy, WeatherWindy, WeatherFoggy:
		return true
	}
	return false
}

func (w Weather) String() string {
	return string(w)
}

func (w Weather) DisplayName() string {
	switch w {
	case WeatherSunny:
		return "Sunny"
	case WeatherRainy:
		return "Rainy"
	case WeatherWindy:
		return "Windy"
	case WeatherFoggy:
		return "Foggy"
	default:
		return "Unknown"
	}
}

func ParseWeather(s string) (Weather, error) {
	w := Weather(strings.ToLower(strings.TrimSpace(s)))
	if !w.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeather, s)
	}
	return w, nil
}

func (w *Weather) UnmarshalText(text []byte) error {
	parsed, err := ParseWeather(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func WeatherFromMenu(n int) (Weather, error) {
	all := WeatherConditions()
	if n < 1 || n > len(all) {
		return "", fmt.Errorf("%w: menu item %d", ErrInvalidWeather, n)
	}
	return all[n-1], nil
}
