package agent

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// World - упрощенный клиент игры для прогона бота без игры.
//
// Жизненный цикл:
//  1. NewWorld -> мир из сценария.
//  2. Snapshot -> снапшот для engine.Tick.
//  3. Движок шлет клавиши и команды обратно в мир (World реализует sink.Sink).
//  4. Step -> кинематика: зажатые клавиши двигают агента, мобы идут по своим скоростям.
//
// /attack по выбранной цели включает лок, как в клиенте: персонаж сам
// поворачивается к цели и бьет ее раз в SwingTicks, пока она в MeleeRange.
type World struct {
	mu sync.Mutex

	self   domain.Agent
	mobs   []Mob
	held   map[domain.Key]bool
	target int
	locked bool
	swing  int

	speed      float64
	turnRate   float64
	damage     int
	meleeRange float64
	swingTicks int

	log *logrus.Entry
}

func NewWorld(s *Scenario) *World {
	mobs := make([]Mob, len(s.Mobs))
	copy(mobs, s.Mobs)

	return &World{
		self:       s.Self,
		mobs:       mobs,
		held:       make(map[domain.Key]bool),
		speed:      s.Speed,
		turnRate:   s.TurnRate,
		damage:     s.Damage,
		meleeRange: s.MeleeRange,
		swingTicks: s.SwingTicks,
		log:        logger.Log.WithField("component", "world"),
	}
}

// SendKey зажимает или отпускает клавишу. Escape снимает выбор цели.
func (w *World) SendKey(key domain.Key, down bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if key == domain.KeyEscape {
		if down {
			w.target = 0
			w.locked = false
		}
		return
	}
	w.held[key] = down
}

// QueueCommand исполняет чат-команду клиента
func (w *World) QueueCommand(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case text == sink.CommandAttack:
		w.engage()
	case text == sink.CommandReleaseKeys:
		clear(w.held)
	case strings.HasPrefix(text, "/target "):
		idx, err := strconv.Atoi(strings.TrimPrefix(text, "/target "))
		if err != nil {
			w.log.WithError(err).Warn("Bad /target command")
			return
		}
		if idx != w.target {
			w.locked = false
		}
		w.target = idx
	default:
		w.log.WithField("command", text).Debug("Unknown command ignored")
	}
}

// engage включает лок на выбранную живую цель. Вызывается под мьютексом.
func (w *World) engage() {
	m := w.mob(w.target)
	if m == nil || domain.IsDeadStatus(m.Status) {
		return
	}
	if !w.locked {
		w.locked = true
		w.swing = 0
		w.log.WithField("mob", m.Name).Debug("Engaged")
	}
}

// autoAttack - лок: доворот на цель и удар раз в swingTicks. Вызывается под мьютексом.
func (w *World) autoAttack() {
	m := w.mob(w.target)
	if m == nil || domain.IsDeadStatus(m.Status) {
		w.locked = false
		return
	}

	w.self.Heading = domain.NormalizeAngle(math.Atan2(-(m.Pos.Y - w.self.Pos.Y), m.Pos.X-w.self.Pos.X))

	w.swing++
	if w.swing < w.swingTicks || domain.Distance(w.self.Pos, m.Pos) > w.meleeRange {
		return
	}
	w.swing = 0

	m.HPPercent -= w.damage
	if m.HPPercent <= 0 {
		m.HPPercent = 0
		m.Status = domain.StatusDead
		w.target = 0
		w.locked = false
		w.log.WithFields(logrus.Fields{
			"mob":   m.Name,
			"index": m.Index,
		}).Info("Mob defeated")
	}
}

func (w *World) mob(index int) *Mob {
	if index == 0 {
		return nil
	}
	for i := range w.mobs {
		if w.mobs[i].Index == index {
			return &w.mobs[i]
		}
	}
	return nil
}

// Step продвигает мир на один тик
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held[domain.KeyTurnLeft] {
		w.self.Heading = domain.NormalizeAngle(w.self.Heading + w.turnRate)
	}
	if w.held[domain.KeyTurnRight] {
		w.self.Heading = domain.NormalizeAngle(w.self.Heading - w.turnRate)
	}

	// Ось Y экрана направлена вниз: вперед по курсу h это (cos h, -sin h)
	step := 0.0
	if w.held[domain.KeyForward] {
		step += w.speed
	}
	if w.held[domain.KeyBackward] {
		step -= w.speed
	}
	w.self.Pos.X += math.Cos(w.self.Heading) * step
	w.self.Pos.Y -= math.Sin(w.self.Heading) * step

	if w.locked {
		w.autoAttack()
	}

	for i := range w.mobs {
		m := &w.mobs[i]
		if domain.IsDeadStatus(m.Status) {
			continue
		}
		m.Pos.X += m.Velocity.X
		m.Pos.Y += m.Velocity.Y
	}
}

// Snapshot собирает снапшот текущего тика
func (w *World) Snapshot() domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	entities := make([]domain.Entity, 0, len(w.mobs))
	for _, m := range w.mobs {
		e := m.Entity
		dx := e.Pos.X - w.self.Pos.X
		dy := e.Pos.Y - w.self.Pos.Y
		dz := e.Pos.Z - w.self.Pos.Z
		e.DistanceSq = dx*dx + dy*dy + dz*dz
		entities = append(entities, e)
	}

	return domain.Snapshot{
		Self:        w.self,
		TargetIndex: w.target,
		Locked:      w.locked,
		Entities:    entities,
	}
}

// Self - текущее состояние агента
func (w *World) Self() domain.Agent {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.self
}

// Teleport ставит агента в точку (запись маршрута до старта бота)
func (w *World) Teleport(pos domain.Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.self.Pos = pos
}

// Alive - сколько мобов еще живо
func (w *World) Alive() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, m := range w.mobs {
		if !domain.IsDeadStatus(m.Status) {
			n++
		}
	}
	return n
}

// Held - зажата ли клавиша
func (w *World) Held(key domain.Key) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.held[key]
}
