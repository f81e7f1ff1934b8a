package agent

import (
	"fmt"
	"os"
	"time"

	"github.com/FentusGames/StockPile/internal/domain"

	"gopkg.in/yaml.v3"
)

// Mob - моб сценария: сущность плюс скорость
type Mob struct {
	domain.Entity `yaml:",inline"`
	// Velocity - смещение за тик (только X/Y)
	Velocity domain.Position `yaml:"velocity"`
	// Invalid - актор не резолвится (по умолчанию резолвится)
	Invalid bool `yaml:"invalid"`
}

// Scenario описывает прогон симулятора
type Scenario struct {
	Name string `yaml:"name"`

	// Config - путь к конфигу бота (относительно текущей директории)
	Config string `yaml:"config"`

	Tick  time.Duration `yaml:"tick"`
	Ticks int           `yaml:"ticks"`

	Self domain.Agent `yaml:"self"`

	Speed    float64 `yaml:"speed"`     // Шаг агента за тик при зажатой клавише
	TurnRate float64 `yaml:"turn_rate"` // Радиан за тик
	Damage   int     `yaml:"damage"`    // Урон в процентах HP за удар

	MeleeRange float64 `yaml:"melee_range"` // Дальность автоатаки под локом
	SwingTicks int     `yaml:"swing_ticks"` // Тиков между ударами

	Targets []string `yaml:"targets"`
	// Record - записать маршрут, пройдя по этим точкам до старта бота
	Record []domain.Position `yaml:"record"`

	Mobs []Mob `yaml:"mobs"`
}

// LoadScenario читает YAML сценарий и проставляет значения по умолчанию
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	s.applyDefaults()
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Tick <= 0 {
		s.Tick = 100 * time.Millisecond
	}
	if s.Ticks <= 0 {
		s.Ticks = 300
	}
	if s.Speed <= 0 {
		s.Speed = 0.1
	}
	if s.TurnRate <= 0 {
		s.TurnRate = 0.1
	}
	if s.Damage <= 0 {
		s.Damage = 25
	}
	if s.MeleeRange <= 0 {
		s.MeleeRange = 4
	}
	if s.SwingTicks <= 0 {
		s.SwingTicks = 10
	}
	if s.Self.Index == 0 {
		s.Self.Index = 1
	}

	for i := range s.Mobs {
		m := &s.Mobs[i]
		if m.SpawnFlags == 0 {
			m.SpawnFlags = domain.SpawnMob
		}
		if m.HPPercent == 0 && m.Status == 0 {
			m.HPPercent = 100
		}
		m.Valid = !m.Invalid
	}
}
