package engine

import (
	"testing"

	"github.com/FentusGames/StockPile/internal/pathing"
	"github.com/FentusGames/StockPile/pkg/logger"
)

func TestLifecycleTarget(t *testing.T) {
	l := NewLifecycle(logger.Log.WithField("component", "test"))

	steps := []struct {
		fire func()
		want string
	}{
		{l.Engage, TargetEngaged}, // внешний выбор
		{l.Engage, TargetEngaged}, // повтор игнорируется
		{l.Drop, TargetNone},
		{l.Drop, TargetNone},
		{l.Acquire, TargetAcquiring},
		{l.Acquire, TargetAcquiring},
		{l.Engage, TargetEngaged},
	}
	for i, s := range steps {
		s.fire()
		if got := l.Target(); got != s.want {
			t.Fatalf("step %d: state = %s, want %s", i, got, s.want)
		}
	}
}

func TestLifecyclePath(t *testing.T) {
	l := NewLifecycle(logger.Log.WithField("component", "test"))

	l.Traverse(pathing.Backward, true)
	if l.Path() != PathTraversingBackward {
		t.Fatalf("path = %s", l.Path())
	}
	l.Traverse(pathing.Forward, true)
	if l.Path() != PathTraversingForward {
		t.Fatalf("path = %s", l.Path())
	}
	l.Traverse(pathing.Forward, true)
	l.Acquire()
	if l.Path() != PathIdle {
		t.Fatalf("acquire must halt traversal, path = %s", l.Path())
	}
	l.Traverse(pathing.Forward, false)
	if l.Path() != PathIdle {
		t.Errorf("inactive traversal = %s", l.Path())
	}
}
