package engine

import (
	"fmt"
	"os"

	"github.com/FentusGames/StockPile/internal/systems"

	"gopkg.in/yaml.v3"
)

// Config хранит пороги бота. Изменения применяются со следующего тика.
type Config struct {
	// Допуски
	ToleranceYaw float64 `yaml:"tolerance_yaw"` // 0.10 .. 0.50
	ToleranceZ   float64 `yaml:"tolerance_z"`   // 0.50 .. 20.0

	// Дистанции боя
	RangeNewTarget float64 `yaml:"range_new_target"` // 20.0 .. 50.0
	RangeEngage    float64 `yaml:"range_engage"`     // 10.0 .. 30.0
	RangeAttacking float64 `yaml:"range_attacking"`  // 2.0 .. 4.0
	RangeMinimum   float64 `yaml:"range_minimum"`    // 1.0 .. 2.0

	// Маршрут
	RangeNextPath    float64 `yaml:"range_next_path"`    // 3.0 .. 5.0, радиус прибытия на узел
	RangeAutoPathing float64 `yaml:"range_auto_pathing"` // 5.0 .. 30.0, шаг записи узлов

	Debug bool `yaml:"debug"`

	// IncludePotentiallyInvalid - показывать в каталоге имена из PotentialBans
	IncludePotentiallyInvalid bool `yaml:"include_potentially_invalid"`

	// Targets - начальный allow-list
	Targets []string `yaml:"targets"`

	// ZoneTable - путь к YAML таблице зон для каталога
	ZoneTable string `yaml:"zone_table"`
}

// bound - границы слайдера для одного параметра
type bound struct {
	min, max float64
}

var (
	boundToleranceYaw     = bound{0.10, 0.50}
	boundToleranceZ       = bound{0.50, 20.0}
	boundRangeNewTarget   = bound{20.0, 50.0}
	boundRangeEngage      = bound{10.0, 30.0}
	boundRangeAttacking   = bound{2.0, 4.0}
	boundRangeMinimum     = bound{1.0, 2.0}
	boundRangeNextPath    = bound{3.0, 5.0}
	boundRangeAutoPathing = bound{5.0, 30.0}
)

func (b bound) clamp(v float64) float64 {
	if v < b.min {
		return b.min
	}
	if v > b.max {
		return b.max
	}
	return v
}

// DefaultConfig создает конфиг по умолчанию
func DefaultConfig() Config {
	return Config{
		ToleranceYaw:     0.25,
		ToleranceZ:       4.0,
		RangeNewTarget:   25.0,
		RangeEngage:      19.0,
		RangeAttacking:   2.5,
		RangeMinimum:     1.0,
		RangeNextPath:    3.0,
		RangeAutoPathing: 10.0,
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// При ошибке возвращает DefaultConfig и ошибку: бот может работать и без файла.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Clamp возвращает копию, в которой все пороги загнаны в границы слайдеров.
// Других проверок нет.
func (c Config) Clamp() Config {
	c.ToleranceYaw = boundToleranceYaw.clamp(c.ToleranceYaw)
	c.ToleranceZ = boundToleranceZ.clamp(c.ToleranceZ)
	c.RangeNewTarget = boundRangeNewTarget.clamp(c.RangeNewTarget)
	c.RangeEngage = boundRangeEngage.clamp(c.RangeEngage)
	c.RangeAttacking = boundRangeAttacking.clamp(c.RangeAttacking)
	c.RangeMinimum = boundRangeMinimum.clamp(c.RangeMinimum)
	c.RangeNextPath = boundRangeNextPath.clamp(c.RangeNextPath)
	c.RangeAutoPathing = boundRangeAutoPathing.clamp(c.RangeAutoPathing)
	return c
}

// Thresholds - пороги для фаз принятия решений
func (c Config) Thresholds() systems.Thresholds {
	return systems.Thresholds{
		ToleranceYaw:   c.ToleranceYaw,
		ToleranceZ:     c.ToleranceZ,
		RangeNewTarget: c.RangeNewTarget,
		RangeEngage:    c.RangeEngage,
		RangeAttacking: c.RangeAttacking,
		RangeMinimum:   c.RangeMinimum,
	}
}
