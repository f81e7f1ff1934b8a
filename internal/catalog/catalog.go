package catalog

import (
	"slices"
	"strings"
)

// CommonBans - имена-заглушки, которые никогда не попадают в каталог
var CommonBans = []string{"???", "", "none", "EFFECTER"}

// PotentialBans - подстроки "подозрительных" имен: скрываются из списка,
// пока оператор не включит показ потенциально невалидных целей.
var PotentialBans = []string{",", ".", "#", "Moogle"}

// Catalog - известные имена сущностей одной зоны
type Catalog struct {
	Zone     int
	ZoneName string
	Records  []Record
	names    []string
}

// New строит каталог: обрезанные имена без CommonBans, отсортированные, без повторов
func New(zone int, zoneName string, records []Record) *Catalog {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		name := rec.TrimmedName()
		if slices.Contains(CommonBans, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	names = slices.Compact(names)

	return &Catalog{
		Zone:     zone,
		ZoneName: zoneName,
		Records:  records,
		names:    names,
	}
}

// Empty - каталог без записей (зона не загрузилась)
func Empty(zone int) *Catalog {
	return &Catalog{Zone: zone}
}

// Names возвращает копию уникальных имен
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len - количество уникальных имен
func (c *Catalog) Len() int {
	return len(c.names)
}

// Has - есть ли имя в каталоге (точное совпадение)
func (c *Catalog) Has(name string) bool {
	_, found := slices.BinarySearch(c.names, name)
	return found
}

// Visible возвращает имена для списка выбора.
// Без includePotential имена с подстроками из PotentialBans скрыты.
func (c *Catalog) Visible(includePotential bool) []string {
	if includePotential {
		return c.Names()
	}
	out := make([]string, 0, len(c.names))
	for _, n := range c.names {
		if !IsPotentiallyInvalid(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsPotentiallyInvalid - содержит ли имя одну из подстрок PotentialBans
func IsPotentiallyInvalid(name string) bool {
	for _, ban := range PotentialBans {
		if strings.Contains(name, ban) {
			return true
		}
	}
	return false
}
