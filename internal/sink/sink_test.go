package sink

import (
	"os"
	"reflect"
	"testing"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestChatRendersKeys(t *testing.T) {
	var got []string
	c := NewChat(func(s string) { got = append(got, s) })

	c.SendKey(domain.KeyForward, true)
	c.SendKey(domain.KeyTurnLeft, false)
	c.QueueCommand(CommandAttack)

	want := []string{"/sendkey numpad8 down", "/sendkey left up", "/attack"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chat output = %q, want %q", got, want)
	}
}

func TestTargetCommand(t *testing.T) {
	if got := TargetCommand(117); got != "/target 117" {
		t.Errorf("TargetCommand() = %q", got)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.SendKey(domain.KeyForward, true)
	r.SendKey(domain.KeyForward, false)
	r.SendKey(domain.KeyForward, true)
	r.QueueCommand(CommandAttack)

	if n := r.Count(domain.KeyForward, true); n != 2 {
		t.Errorf("Count(down) = %d, want 2", n)
	}
	if cmds := r.Commands(); len(cmds) != 1 || cmds[0] != CommandAttack {
		t.Errorf("Commands() = %q", cmds)
	}

	events := r.Drain()
	if len(events) != 4 {
		t.Fatalf("Drain() returned %d events, want 4", len(events))
	}
	if events[1].String() != "/sendkey numpad8 up" {
		t.Errorf("event string = %q", events[1].String())
	}
	if len(r.Events()) != 0 {
		t.Error("Drain() should empty the recorder")
	}
}

func TestFanoutPreservesOrder(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	f := NewFanout(a)
	f.Register(b)

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}

	f.SendKey(domain.KeyBackward, true)
	f.QueueCommand(CommandReleaseKeys)

	for _, r := range []*Recorder{a, b} {
		ev := r.Events()
		if len(ev) != 2 || ev[0].String() != "/sendkey numpad2 down" || ev[1].String() != "/releasekeys" {
			t.Errorf("unexpected fanout events: %v", ev)
		}
	}
}

func TestFanoutWithoutSinks(t *testing.T) {
	f := NewFanout()
	// Не должно паниковать
	f.SendKey(domain.KeyForward, true)
	f.QueueCommand(CommandAttack)
}
