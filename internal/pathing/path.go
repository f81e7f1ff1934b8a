package pathing

import (
	"math"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Direction - направление обхода записанного маршрута
type Direction uint8

const (
	// Backward - к нулевому узлу (начальное направление: запись обычно кончается там, где стоит агент)
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Steer - решение обхода на один тик
type Steer struct {
	Turn    domain.Key // KeyTurnLeft / KeyTurnRight / KeyUnknown (не поворачиваем)
	Forward bool
}

// Path - записанный маршрут и курсор обхода "пинг-понг".
// Курсор, если установлен, всегда валидный индекс в waypoints.
type Path struct {
	waypoints []domain.Position

	recording bool
	last      domain.Position
	hasLast   bool

	cursor    int
	hasCursor bool
	direction Direction
}

func NewPath() *Path {
	return &Path{direction: Backward}
}

// StartRecording включает запись. Шаг отсчитывается от последней записанной точки,
// даже если она из прошлой сессии записи; у пустого маршрута первая точка пишется сразу.
func (p *Path) StartRecording() {
	p.recording = true
}

func (p *Path) StopRecording() {
	p.recording = false
}

func (p *Path) Recording() bool {
	return p.recording
}

// Record добавляет позицию, если идет запись и агент ушел от последней точки хотя бы на spacing.
// Возвращает true, если точка добавлена.
func (p *Path) Record(pos domain.Position, spacing float64) bool {
	if !p.recording {
		return false
	}
	if p.hasLast && domain.Distance(p.last, pos) < spacing {
		return false
	}
	p.waypoints = append(p.waypoints, pos)
	p.last = pos
	p.hasLast = true

	logger.Log.WithFields(logrus.Fields{
		"component": "pathing",
		"index":     len(p.waypoints) - 1,
		"x":         pos.X,
		"y":         pos.Y,
		"z":         pos.Z,
	}).Debug("Waypoint recorded")
	return true
}

// Traverse делает один шаг обхода маршрута (вызывается только когда цели нет).
func (p *Path) Traverse(self domain.Position, heading, yawTolerance, arrival float64) Steer {
	if len(p.waypoints) == 0 {
		return Steer{}
	}

	// 1. Курсора нет - начинаем с ближайшего узла, на этом тике не двигаемся
	if !p.hasCursor {
		p.cursor = p.nearest(self)
		p.hasCursor = true
		return Steer{}
	}

	// 2. Доворачиваем на узел (допуск по рысканию вдвое шире боевого)
	target := p.waypoints[p.cursor]
	steer := Steer{Forward: true}

	delta := domain.HeadingDelta(self, heading, target.X, target.Y)
	if math.Abs(delta) >= yawTolerance*2 {
		if delta < 0 {
			steer.Turn = domain.KeyTurnRight
		} else if delta > 0 {
			steer.Turn = domain.KeyTurnLeft
		}
	}

	// 3. Дошли до узла - следующий (или разворот на краю)
	if domain.HorizontalDistance(self, target) < arrival {
		p.advance()
	}

	return steer
}

func (p *Path) advance() {
	last := len(p.waypoints) - 1

	switch p.direction {
	case Forward:
		if p.cursor >= last {
			p.direction = Backward
		} else {
			p.cursor++
		}
	case Backward:
		if p.cursor <= 0 {
			p.direction = Forward
		} else {
			p.cursor--
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pathing",
		"cursor":    p.cursor,
		"direction": p.direction.String(),
	}).Debug("Waypoint reached")
}

// nearest возвращает индекс ближайшего узла; при равенстве побеждает меньший индекс
func (p *Path) nearest(self domain.Position) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, wp := range p.waypoints {
		if d := domain.Distance(wp, self); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Clear удаляет все узлы и курсор
func (p *Path) Clear() {
	p.waypoints = nil
	p.hasLast = false
	p.ResetCursor()
}

// RemoveAt удаляет узел i. Вне диапазона - ничего не делает и возвращает false.
func (p *Path) RemoveAt(i int) bool {
	if i < 0 || i >= len(p.waypoints) {
		return false
	}
	last := i == len(p.waypoints)-1
	p.waypoints = append(p.waypoints[:i], p.waypoints[i+1:]...)
	// Удален последний узел: шаг считаем от нового хвоста
	if last {
		if n := len(p.waypoints); n > 0 {
			p.last = p.waypoints[n-1]
		} else {
			p.hasLast = false
		}
	}
	p.ResetCursor()
	return true
}

// ResetCursor сбрасывает курсор, он будет пересчитан по ближайшему узлу
func (p *Path) ResetCursor() {
	p.cursor = 0
	p.hasCursor = false
}

// SetCursor ставит курсор и направление явно (false, если индекс невалиден)
func (p *Path) SetCursor(i int, dir Direction) bool {
	if i < 0 || i >= len(p.waypoints) {
		return false
	}
	p.cursor = i
	p.hasCursor = true
	p.direction = dir
	return true
}

// Cursor возвращает текущий индекс узла, если он установлен
func (p *Path) Cursor() (int, bool) {
	return p.cursor, p.hasCursor
}

func (p *Path) Direction() Direction {
	return p.direction
}

// Len - количество узлов
func (p *Path) Len() int {
	return len(p.waypoints)
}

// Waypoints возвращает копию узлов
func (p *Path) Waypoints() []domain.Position {
	out := make([]domain.Position, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}
