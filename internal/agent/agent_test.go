package agent

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/engine"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// Helper: сценарий с одним гоблином на расстоянии x по курсу
func goblinScenario(x float64) *Scenario {
	s := &Scenario{
		Name:    "test",
		Ticks:   600,
		Self:    domain.Agent{Index: 1, ServerID: 77},
		Targets: []string{"Goblin"},
		Mobs: []Mob{{
			Entity: domain.Entity{Index: 5, Name: "Goblin", Pos: domain.Position{X: x}},
		}},
	}
	s.applyDefaults()
	return s
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWorldKinematics(t *testing.T) {
	w := NewWorld(goblinScenario(10))

	w.SendKey(domain.KeyForward, true)
	w.Step()
	if pos := w.Self().Pos; !near(pos.X, 0.1) || !near(pos.Y, 0) {
		t.Fatalf("forward at heading 0: %+v", pos)
	}

	// Влево - курс растет, вперед по курсу pi/2 это -Y
	w.SendKey(domain.KeyForward, false)
	w.SendKey(domain.KeyTurnLeft, true)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if h := w.Self().Heading; !near(h, 0.5) {
		t.Fatalf("heading = %v, want 0.5", h)
	}

	w.SendKey(domain.KeyTurnLeft, false)
	w.Teleport(domain.Position{})
	w.self.Heading = math.Pi / 2
	w.SendKey(domain.KeyBackward, true)
	w.Step()
	if pos := w.Self().Pos; !near(pos.X, 0) || !near(pos.Y, 0.1) {
		t.Errorf("backward at pi/2: %+v", pos)
	}

	w.QueueCommand(sink.CommandReleaseKeys)
	if w.Held(domain.KeyBackward) {
		t.Error("/releasekeys left keys held")
	}
}

func TestWorldSnapshot(t *testing.T) {
	s := goblinScenario(3)
	s.Mobs[0].Pos.Y = 4
	w := NewWorld(s)

	snap := w.Snapshot()
	if len(snap.Entities) != 1 {
		t.Fatalf("entities = %d", len(snap.Entities))
	}
	e := snap.Entities[0]
	if e.DistanceSq != 25 || !e.Valid || e.SpawnFlags != domain.SpawnMob || e.HPPercent != 100 {
		t.Errorf("entity = %+v", e)
	}
}

func TestWorldCombat(t *testing.T) {
	w := NewWorld(goblinScenario(2))

	// Без выбранной цели /attack ничего не делает
	w.QueueCommand(sink.CommandAttack)
	if w.Snapshot().Locked {
		t.Fatal("locked without target")
	}

	w.QueueCommand(sink.TargetCommand(5))
	w.QueueCommand(sink.CommandAttack)
	snap := w.Snapshot()
	if snap.TargetIndex != 5 || !snap.Locked {
		t.Fatalf("target=%d locked=%v", snap.TargetIndex, snap.Locked)
	}

	// 4 удара по 25% раз в 10 тиков
	for i := 0; i < 40; i++ {
		w.Step()
	}
	snap = w.Snapshot()
	if w.Alive() != 0 || snap.Locked || snap.TargetIndex != 0 {
		t.Errorf("alive=%d locked=%v target=%d", w.Alive(), snap.Locked, snap.TargetIndex)
	}
	if st := snap.Entities[0].Status; !domain.IsDeadStatus(st) {
		t.Errorf("status = %d", st)
	}
}

func TestWorldEscapeClearsTarget(t *testing.T) {
	w := NewWorld(goblinScenario(2))
	w.QueueCommand(sink.TargetCommand(5))
	w.QueueCommand(sink.CommandAttack)

	w.SendKey(domain.KeyEscape, true)
	w.SendKey(domain.KeyEscape, false)

	if snap := w.Snapshot(); snap.TargetIndex != 0 || snap.Locked {
		t.Errorf("escape kept target: %+v", snap)
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := `
name: two goblins
tick: 50ms
self:
  pos: {x: 1, y: 2, z: 0}
  zone: 3
mobs:
  - index: 5
    name: Goblin
    pos: {x: 10, y: 0, z: 0}
    velocity: {x: 0.1, y: 0}
  - index: 6
    name: Goblin
    hp: 40
    invalid: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Tick != 50*time.Millisecond || s.Ticks != 300 || s.Self.Index != 1 || s.Self.Zone != 3 {
		t.Errorf("scenario = %+v", s)
	}
	if len(s.Mobs) != 2 {
		t.Fatalf("mobs = %d", len(s.Mobs))
	}
	if m := s.Mobs[0]; m.HPPercent != 100 || !m.Valid || m.Velocity.X != 0.1 || m.SpawnFlags != domain.SpawnMob {
		t.Errorf("mob 0 = %+v", m)
	}
	if m := s.Mobs[1]; m.HPPercent != 40 || m.Valid {
		t.Errorf("mob 1 = %+v", m)
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing scenario")
	}
}

func TestSimulationKillsGoblin(t *testing.T) {
	var lines []string
	sim := NewSimulation(goblinScenario(10), engine.DefaultConfig(), nil, func(tick int, line string) {
		lines = append(lines, line)
	})

	res := sim.Run()

	if res.Kills != 1 {
		t.Fatalf("kills = %d after %d ticks (status %v)", res.Kills, res.Ticks, res.Status.Lines())
	}
	if res.Ticks >= 600 {
		t.Errorf("simulation did not stop early")
	}
	if res.Commands == 0 || len(lines) == 0 {
		t.Errorf("no transcript: commands=%d lines=%d", res.Commands, len(lines))
	}
	if sim.Engine().Running() {
		t.Error("engine still running after Run")
	}
}

func TestSimulationRecordsPath(t *testing.T) {
	s := goblinScenario(100)
	s.Mobs = nil
	s.Ticks = 20
	s.Record = []domain.Position{{X: 0}, {X: 10}, {X: 20}}

	sim := NewSimulation(s, engine.DefaultConfig(), nil, nil)
	res := sim.Run()

	if res.Status.Waypoints != 3 {
		t.Fatalf("waypoints = %d", res.Status.Waypoints)
	}
	if res.KeyDowns == 0 {
		t.Error("bot did not walk the path")
	}
	if pos := sim.World().Self().Pos; pos.X <= 0 {
		t.Errorf("agent did not move forward along the path: %+v", pos)
	}
}
