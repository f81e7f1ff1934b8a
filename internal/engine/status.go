package engine

import (
	"fmt"

	"github.com/FentusGames/StockPile/internal/domain"
)

// Status - срез состояния бота для панели оператора
type Status struct {
	Running   bool
	Recording bool
	HasTarget bool
	HasLock   bool

	Target         domain.TargetRef // Цель бота ("closest target")
	TargetDistance float64
	External       domain.TargetRef // Цель, выбранная в клиенте

	TargetPhase string // TargetNone / TargetAcquiring / TargetEngaged
	PathPhase   string // PathIdle / PathTraversing*

	Waypoints int
	Cursor    int // -1, пока курсор не выбран
	Direction string

	Zone    int
	Session string
}

// Status собирает текущее состояние
func (e *Engine) Status() Status {
	cursor := -1
	if i, ok := e.path.Cursor(); ok {
		cursor = i
	}

	return Status{
		Running:        e.running,
		Recording:      e.path.Recording(),
		HasTarget:      e.state.HasTarget,
		HasLock:        e.state.HasLock,
		Target:         e.state.Current,
		TargetDistance: e.state.Distance,
		External:       e.external,
		TargetPhase:    e.lifecycle.Target(),
		PathPhase:      e.lifecycle.Path(),
		Waypoints:      e.path.Len(),
		Cursor:         cursor,
		Direction:      e.path.Direction().String(),
		Zone:           e.zone,
		Session:        e.session,
	}
}

func yesNo(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Lines рендерит статус построчно, в том же виде, что и панель плагина
func (s Status) Lines() []string {
	return []string{
		"Running: " + yesNo(s.Running),
		"Recording: " + yesNo(s.Recording),
		"Has Target: " + yesNo(s.HasTarget),
		"Has Lock: " + yesNo(s.HasLock),
		"Closest Target Name: " + s.Target.DisplayName(),
		fmt.Sprintf("Closest Target ID: %d", s.Target.DisplayIndex()),
		fmt.Sprintf("Closest Target Distance: %.2f", s.TargetDistance),
		"Target Name: " + s.External.DisplayName(),
		fmt.Sprintf("Target ID: %d", s.External.DisplayIndex()),
		fmt.Sprintf("Phase: %s / %s", s.TargetPhase, s.PathPhase),
		fmt.Sprintf("Waypoints: %d (cursor %d, %s)", s.Waypoints, s.Cursor, s.Direction),
		"Session: " + coalesce(s.Session, "none"),
	}
}
