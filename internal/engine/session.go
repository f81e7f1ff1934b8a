package engine

import (
	"strings"

	"github.com/FentusGames/StockPile/internal/catalog"
	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Start запускает бота. Запись маршрута при этом останавливается.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.path.StopRecording()
	e.running = true
	e.session = uuid.NewString()
	e.log = logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"session":   e.session,
	})
	e.lifecycle.log = e.log
	e.log.WithField("targets", e.selection.Len()).Info("Bot started")
}

// Stop останавливает бота: отпускает все зажатые клавиши и шлет /releasekeys.
func (e *Engine) Stop() {
	e.running = false
	e.controls.Reload()
	e.out.QueueCommand(sink.CommandReleaseKeys)

	e.state.Drop()
	e.motion = motionCache{}
	e.lifecycle.Drop()
	e.lifecycle.Halt()
	e.log.Info("Bot stopped")
}

func (e *Engine) Running() bool {
	return e.running
}

// StartRecording начинает запись маршрута. Во время работы бота запись не включается.
func (e *Engine) StartRecording() bool {
	if e.running {
		return false
	}
	e.path.StartRecording()
	e.log.Info("Path recording started")
	return true
}

func (e *Engine) StopRecording() {
	e.path.StopRecording()
	e.log.WithField("waypoints", e.path.Len()).Info("Path recording stopped")
}

func (e *Engine) Recording() bool {
	return e.path.Recording()
}

// ClearWaypoints останавливает бота и стирает маршрут
func (e *Engine) ClearWaypoints() {
	if e.running {
		e.Stop()
	}
	e.path.StopRecording()
	e.path.Clear()
	e.lifecycle.Halt()
	e.log.Info("Waypoints cleared")
}

// RemoveWaypoint удаляет узел по индексу. false - индекс вне диапазона.
func (e *Engine) RemoveWaypoint(i int) bool {
	if !e.path.RemoveAt(i) {
		return false
	}
	e.log.WithFields(logrus.Fields{
		"index":     i,
		"waypoints": e.path.Len(),
	}).Info("Waypoint removed")
	return true
}

func (e *Engine) Waypoints() []domain.Position {
	return e.path.Waypoints()
}

// AddTarget добавляет имя в allow-list. Имя не из каталога зоны тоже добавляется, но с предупреждением.
func (e *Engine) AddTarget(name string) bool {
	if !e.selection.Add(name) {
		return false
	}
	e.log.Infof("Added: %s", name)

	trimmed := strings.TrimSpace(name)
	if e.catalog.Len() > 0 && !e.catalog.Has(trimmed) {
		e.log.WithFields(logrus.Fields{
			"target": trimmed,
			"zone":   e.catalog.Zone,
		}).Warn("Target is not in the zone catalog")
	}
	return true
}

// RemoveTarget убирает имя из allow-list
func (e *Engine) RemoveTarget(name string) bool {
	if !e.selection.Remove(name) {
		return false
	}
	e.log.Infof("Removed: %s", name)
	return true
}

// RemoveTargetAt убирает имя по индексу в списке
func (e *Engine) RemoveTargetAt(i int) bool {
	name, ok := e.selection.RemoveAt(i)
	if !ok {
		return false
	}
	e.log.Infof("Removed: %s", name)
	return true
}

// Targets - текущий allow-list
func (e *Engine) Targets() []string {
	return e.selection.Names()
}

// Catalog - каталог мобов текущей зоны (не nil)
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CatalogNames - видимые имена каталога с учетом флага IncludePotentiallyInvalid
func (e *Engine) CatalogNames() []string {
	return e.catalog.Visible(e.cfg.IncludePotentiallyInvalid)
}

func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig применяет новые пороги со следующего тика
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg.Clamp()
	logger.SetDebug(e.cfg.Debug)
}
