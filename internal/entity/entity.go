package entity

const (
	CfgPath = "./config/config.json"
)

// Kind — вариант транспорта, определяет формулу времени
type Kind int

const (
	KindGround Kind = iota + 1
	KindAir
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAir:
		return "air"
	default:
		return "unknown"
	}
}

// Rule — селектор формулы коэффициента ускорения воздушного транспорта
type Rule int

const (
	RuleMortar Rule = iota + 1
	RuleBroom
	RuleCarpet
	RuleShip
)

// Vehicle — неизменяемое описание участника гонки.
// Для наземного транспорта заполнены RestInterval и BaseRestDuration,
// для воздушного Rule.
type Vehicle struct {
	Name  string // уникальное, ключ в результатах
	Kind  Kind
	Speed float64

	RestInterval     float64 // часы движения между обязательными остановками
	BaseRestDuration float64 // единица времени отдыха

	Rule Rule
}

func (v Vehicle) IsGround() bool { return v.Kind == KindGround }

func (v Vehicle) IsAir() bool { return v.Kind == KindAir }

// Result — время одного участника с учетом погоды
type Result struct {
	Name string
	Time float64
}

// ResultSet — имя -> время в порядке регистрации
type ResultSet []Result

// Get ищет время участника по имени
func (rs ResultSet) Get(name string) (float64, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r.Time, true
		}
	}
	return 0, false
}

// Set добавляет результат или перезаписывает существующий на том же месте
func (rs ResultSet) Set(name string, t float64) ResultSet {
	for i := range rs {
		if rs[i].Name == name {
			rs[i].Time = t
			return rs
		}
	}
	return append(rs, Result{Name: name, Time: t})
}

// RaceConfig — одна гонка из конфига
type RaceConfig struct {
	Category Category
	Distance float64
	Weather  Weather
	Vehicles []Vehicle
}

// Config — финальная структура с готовыми типами
type Config struct {
	Races []RaceConfig
}
