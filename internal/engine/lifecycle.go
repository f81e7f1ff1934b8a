package engine

import (
	"context"

	"github.com/FentusGames/StockPile/internal/pathing"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Состояния цели
const (
	TargetNone      = "none"
	TargetAcquiring = "acquiring"
	TargetEngaged   = "engaged"
)

// Состояния обхода маршрута
const (
	PathIdle               = "idle"
	PathTraversingForward  = "traversing_forward"
	PathTraversingBackward = "traversing_backward"
)

// События
const (
	eventAcquire = "acquire"
	eventEngage  = "engage"
	eventDrop    = "drop"

	eventForward  = "forward"
	eventBackward = "backward"
	eventHalt     = "halt"
)

// Lifecycle ведет две машины состояний: цель и маршрут.
// Переходы только отражают решения движка, сами ничего не решают.
type Lifecycle struct {
	target *fsm.FSM
	path   *fsm.FSM
	log    *logrus.Entry
}

func NewLifecycle(log *logrus.Entry) *Lifecycle {
	l := &Lifecycle{log: log}

	l.target = fsm.NewFSM(
		TargetNone,
		fsm.Events{
			{Name: eventAcquire, Src: []string{TargetNone}, Dst: TargetAcquiring},
			// Внешний выбор цели сразу переводит в бой
			{Name: eventEngage, Src: []string{TargetNone, TargetAcquiring}, Dst: TargetEngaged},
			{Name: eventDrop, Src: []string{TargetAcquiring, TargetEngaged}, Dst: TargetNone},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				l.log.WithFields(logrus.Fields{
					"machine": "target",
					"from":    e.Src,
					"to":      e.Dst,
				}).Debug("Target state changed")
			},
		},
	)

	l.path = fsm.NewFSM(
		PathIdle,
		fsm.Events{
			{Name: eventForward, Src: []string{PathIdle, PathTraversingBackward}, Dst: PathTraversingForward},
			{Name: eventBackward, Src: []string{PathIdle, PathTraversingForward}, Dst: PathTraversingBackward},
			{Name: eventHalt, Src: []string{PathTraversingForward, PathTraversingBackward}, Dst: PathIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				l.log.WithFields(logrus.Fields{
					"machine": "path",
					"from":    e.Src,
					"to":      e.Dst,
				}).Debug("Path state changed")
			},
		},
	)

	return l
}

// fire выполняет событие, если оно допустимо из текущего состояния.
// Повтор события в том же состоянии просто игнорируется.
func (l *Lifecycle) fire(m *fsm.FSM, event string) {
	if !m.Can(event) {
		return
	}
	if err := m.Event(context.Background(), event); err != nil {
		l.log.WithError(err).WithField("event", event).Warn("Lifecycle transition failed")
	}
}

func (l *Lifecycle) Acquire() {
	l.fire(l.target, eventAcquire)
	l.fire(l.path, eventHalt)
}

func (l *Lifecycle) Engage() {
	l.fire(l.target, eventEngage)
	l.fire(l.path, eventHalt)
}

func (l *Lifecycle) Drop() {
	l.fire(l.target, eventDrop)
}

// Traverse отмечает обход в направлении dir. active=false - маршрута нет или курсор еще не выбран.
func (l *Lifecycle) Traverse(dir pathing.Direction, active bool) {
	switch {
	case !active:
		l.fire(l.path, eventHalt)
	case dir == pathing.Forward:
		l.fire(l.path, eventForward)
	default:
		l.fire(l.path, eventBackward)
	}
}

// Halt останавливает обход (стоп бота, очистка маршрута)
func (l *Lifecycle) Halt() {
	l.fire(l.path, eventHalt)
}

func (l *Lifecycle) Target() string {
	return l.target.Current()
}

func (l *Lifecycle) Path() string {
	return l.path.Current()
}
