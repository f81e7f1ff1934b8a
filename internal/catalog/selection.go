package catalog

import (
	"slices"
	"strings"
)

// Selection - список имен, которые бот имеет право атаковать (allow-list оператора)
type Selection struct {
	names []string
}

func NewSelection(names ...string) *Selection {
	s := &Selection{}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add добавляет имя. Пустые и повторные имена игнорируются.
func (s *Selection) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(s.names, name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Remove удаляет имя, если оно есть
func (s *Selection) Remove(name string) bool {
	i := slices.Index(s.names, strings.TrimSpace(name))
	if i < 0 {
		return false
	}
	s.names = slices.Delete(s.names, i, i+1)
	return true
}

// RemoveAt удаляет имя по индексу в списке (false вне диапазона)
func (s *Selection) RemoveAt(i int) (string, bool) {
	if i < 0 || i >= len(s.names) {
		return "", false
	}
	name := s.names[i]
	s.names = slices.Delete(s.names, i, i+1)
	return name, true
}

// Contains - точное совпадение обрезанного имени
func (s *Selection) Contains(name string) bool {
	return slices.Contains(s.names, strings.TrimSpace(name))
}

// Names возвращает копию списка в порядке добавления
func (s *Selection) Names() []string {
	return slices.Clone(s.names)
}

func (s *Selection) Len() int {
	return len(s.names)
}
