package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrUnknownZone - для зоны нет записи в таблице зон
var ErrUnknownZone = errors.New("failed to locate required zone entry")

// Zone - строка таблицы зон: относительный путь к ростеру и имя для отображения
type Zone struct {
	File string `yaml:"file"`
	Name string `yaml:"name"`
}

// ZoneTable - таблица зон и корень установки клиента
type ZoneTable struct {
	Root  string       `yaml:"root"`
	Zones map[int]Zone `yaml:"zones"`
}

// LoadZoneTable читает таблицу зон из YAML
func LoadZoneTable(path string) (ZoneTable, error) {
	var t ZoneTable
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read zone table: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse zone table %s: %w", path, err)
	}
	return t, nil
}

// Provider отдает каталог по номеру зоны
type Provider struct {
	table ZoneTable
}

func NewProvider(table ZoneTable) *Provider {
	return &Provider{table: table}
}

// Load читает ростер зоны. При любой ошибке возвращает пустой каталог и ошибку:
// бот продолжает работать на ручных именах.
func (p *Provider) Load(zone int) (*Catalog, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "catalog",
		"zone":      zone,
	})

	entry, ok := p.table.Zones[zone]
	if !ok {
		return Empty(zone), fmt.Errorf("zone %d: %w", zone, ErrUnknownZone)
	}

	if _, err := os.Stat(p.table.Root); err != nil {
		return Empty(zone), fmt.Errorf("failed to locate install path %q: %w", p.table.Root, err)
	}

	path := filepath.Join(p.table.Root, filepath.FromSlash(entry.File))
	log.WithFields(logrus.Fields{
		"zone_name": entry.Name,
		"path":      path,
	}).Debug("Loading zone roster")

	records, err := LoadRoster(path)
	if err != nil {
		return Empty(zone), err
	}

	c := New(zone, entry.Name, records)
	log.WithFields(logrus.Fields{
		"mobs":        len(c.Records),
		"mobs_unique": c.Len(),
	}).Info("Zone roster loaded")
	return c, nil
}
