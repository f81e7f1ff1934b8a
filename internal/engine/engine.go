package engine

import (
	"time"

	"github.com/FentusGames/StockPile/internal/catalog"
	"github.com/FentusGames/StockPile/internal/controls"
	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/pathing"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/internal/systems"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CatalogProvider отдает каталог мобов зоны. Каталог не nil даже при ошибке.
type CatalogProvider interface {
	Load(zone int) (*catalog.Catalog, error)
}

// motionCache - последняя известная позиция текущей цели
type motionCache struct {
	index int
	x, y  float64
	set   bool
}

// Engine - боевой движок и обход маршрута. Tick вызывается синхронно раз в кадр.
type Engine struct {
	cfg      Config
	clock    Clock
	out      sink.Sink
	provider CatalogProvider

	controls  *controls.Registry
	path      *pathing.Path
	selection *catalog.Selection
	catalog   *catalog.Catalog
	lifecycle *Lifecycle

	zone      int
	zoneKnown bool

	running bool
	session string

	state    domain.TargetingState
	external domain.TargetRef
	motion   motionCache
	moving   bool
	delta    float64

	acquiredAt time.Time
	lastSelect time.Time
	lastAttack time.Time

	log *logrus.Entry
}

// Option настраивает движок при создании
type Option func(*Engine)

// WithClock подменяет часы (тесты, симулятор)
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithProvider подключает каталог зон
func WithProvider(p CatalogProvider) Option {
	return func(e *Engine) { e.provider = p }
}

// New создает остановленный движок. Начальный allow-list берется из cfg.Targets.
func New(cfg Config, out sink.Sink, opts ...Option) *Engine {
	if logger.Log == nil {
		logger.Init()
	}

	e := &Engine{
		cfg:       cfg.Clamp(),
		clock:     SystemClock{},
		out:       out,
		path:      pathing.NewPath(),
		selection: catalog.NewSelection(cfg.Targets...),
		catalog:   catalog.Empty(0),
		log:       logger.Log.WithField("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.controls = controls.NewRegistry(out)
	e.lifecycle = NewLifecycle(e.log)

	now := e.clock.Now()
	e.acquiredAt = now
	e.lastSelect = now
	e.lastAttack = now

	return e
}

// Tick выполняет один кадр решения.
func (e *Engine) Tick(snap domain.Snapshot) {
	// 0. Запись маршрута и смена зоны работают и у остановленного бота
	e.path.Record(snap.Self.Pos, e.cfg.RangeAutoPathing)
	e.checkZone(snap.Self.Zone)

	e.state.HasLock = snap.Locked
	e.state.HasTarget = snap.HasTarget()
	e.external = domain.TargetRef{}
	if snap.HasTarget() {
		ent, _ := snap.Lookup(snap.TargetIndex)
		e.external = domain.NewTargetRef(snap.TargetIndex, ent.Name)
	}

	if !e.running {
		return
	}

	// 1. Мертвым ничего не делаем
	if domain.IsDeadStatus(snap.Self.Status) {
		return
	}

	// 2.
	e.controls.Reset()
	now := e.clock.Now()

	// 3-4. Выбор игрока важнее нашего, но себя не бьем
	if snap.HasTarget() {
		if snap.TargetIndex == snap.Self.Index {
			e.log.Debug("Self targeted, deselecting")
			e.out.SendKey(domain.KeyEscape, true)
			e.out.SendKey(domain.KeyEscape, false)
		} else if e.state.Current.Index != snap.TargetIndex || !e.state.Current.Valid() {
			e.state.Current = domain.NewTargetRef(snap.TargetIndex, e.external.Name)
			e.log.WithFields(logrus.Fields{
				"target": e.state.Current.DisplayName(),
				"index":  snap.TargetIndex,
			}).Debug("Adopted external target")
		}
	}

	th := e.cfg.Thresholds()

	// 5. Нет цели: ищем, иначе идем по маршруту
	if !e.state.Current.Valid() {
		if c, ok := systems.AcquireTarget(snap, e.selection, th); ok {
			e.state.Current = c.Target
			e.state.Distance = c.Distance
			e.path.ResetCursor()
			e.acquiredAt = now
			e.lifecycle.Acquire()
			e.log.WithFields(logrus.Fields{
				"target":   c.Target.Name,
				"index":    c.Target.Index,
				"distance": c.Distance,
			}).Info("Target acquired")
		} else {
			e.traverse(snap)
		}
		e.controls.Commit()
		return
	}

	// 6-7. Цель есть: проверяем, жива ли она еще для нас
	res := systems.ValidateTarget(snap, e.state.Current, th)
	if !res.Valid {
		e.log.WithFields(logrus.Fields{
			"target": e.state.Current.DisplayName(),
			"index":  e.state.Current.Index,
			"reason": res.Reason,
		}).Info("Target dropped")
		e.state.Drop()
		e.lifecycle.Drop()
		e.controls.Commit()
		return
	}
	e.lifecycle.Engage()

	if res.Target.Name != "" {
		e.state.Current.Name = res.Target.Name
	}
	e.state.Distance = res.Distance
	e.moving = e.trackMotion(res.Target)
	e.delta = domain.HeadingDelta(snap.Self.Pos, snap.Self.Heading, res.Target.Pos.X, res.Target.Pos.Y)

	eng := systems.Engagement{
		Distance:  res.Distance,
		Delta:     e.delta,
		HasTarget: snap.HasTarget(),
		Locked:    snap.Locked,
		Moving:    e.moving,
	}

	// 8. Поворот и команды
	if rot := systems.DecideRotation(eng, th); rot.Turn != domain.KeyUnknown {
		e.controls.SetDesired(rot.Turn, true)
	}

	acts := systems.DecideActions(eng, th, systems.Cooldowns{
		SinceAcquired: now.Sub(e.acquiredAt),
		SinceSelect:   now.Sub(e.lastSelect),
		SinceAttack:   now.Sub(e.lastAttack),
	})
	if acts.Reselect {
		e.out.QueueCommand(sink.TargetCommand(e.state.Current.Index))
		e.lastSelect = now
	}
	if acts.Attack {
		e.out.QueueCommand(sink.CommandAttack)
		e.lastAttack = now
	}

	// 9. Движение
	if mot := systems.DecideMovement(eng, th); mot.Key != domain.KeyUnknown {
		e.controls.SetDesired(mot.Key, true)
	}

	// 10.
	e.controls.Commit()
}

// traverse - один шаг обхода маршрута при отсутствии цели
func (e *Engine) traverse(snap domain.Snapshot) {
	steer := e.path.Traverse(snap.Self.Pos, snap.Self.Heading, e.cfg.ToleranceYaw, e.cfg.RangeNextPath)
	if steer.Turn != domain.KeyUnknown {
		e.controls.SetDesired(steer.Turn, true)
	}
	if steer.Forward {
		e.controls.SetDesired(domain.KeyForward, true)
	}

	_, active := e.path.Cursor()
	e.lifecycle.Traverse(e.path.Direction(), active)
}

// trackMotion сравнивает позицию цели с прошлым тиком. Новая цель считается движущейся.
func (e *Engine) trackMotion(target domain.Entity) bool {
	prev := e.motion
	e.motion = motionCache{index: target.Index, x: target.Pos.X, y: target.Pos.Y, set: true}

	if !prev.set || prev.index != target.Index {
		return true
	}
	return prev.x != target.Pos.X || prev.y != target.Pos.Y
}

// checkZone загружает каталог один раз на каждую смену зоны
func (e *Engine) checkZone(zone int) {
	if e.zoneKnown && zone == e.zone {
		return
	}
	e.zone = zone
	e.zoneKnown = true

	if e.provider == nil {
		e.catalog = catalog.Empty(zone)
		return
	}

	c, err := e.provider.Load(zone)
	if c == nil {
		c = catalog.Empty(zone)
	}
	e.catalog = c
	if err != nil {
		e.log.WithError(err).WithField("zone", zone).Warn("Zone roster unavailable, catalog is empty")
	}
}
