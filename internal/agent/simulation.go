package agent

import (
	"time"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/engine"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Clock - часы симуляции, идут только по Step
type Clock struct {
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Unix(0, 0)}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Result - итог прогона
type Result struct {
	Ticks    int
	Kills    int
	Commands int
	KeyDowns int
	Status   engine.Status
}

// Simulation связывает мир, движок и транскрипт событий
type Simulation struct {
	scenario *Scenario
	world    *World
	engine   *engine.Engine
	clock    *Clock
	recorder *sink.Recorder
	tick     int
}

// NewSimulation собирает прогон. transcript получает каждое событие движка в текстовом виде.
func NewSimulation(s *Scenario, cfg engine.Config, provider engine.CatalogProvider, transcript func(tick int, line string)) *Simulation {
	sim := &Simulation{
		scenario: s,
		world:    NewWorld(s),
		clock:    NewClock(),
		recorder: sink.NewRecorder(),
	}

	out := sink.NewFanout(sim.world, sim.recorder)
	if transcript != nil {
		out.Register(sink.NewChat(func(text string) {
			transcript(sim.tick, text)
		}))
	}

	cfg.Targets = append(cfg.Targets, s.Targets...)
	opts := []engine.Option{engine.WithClock(sim.clock)}
	if provider != nil {
		opts = append(opts, engine.WithProvider(provider))
	}
	sim.engine = engine.New(cfg, out, opts...)
	return sim
}

func (s *Simulation) Engine() *engine.Engine {
	return s.engine
}

func (s *Simulation) World() *World {
	return s.world
}

// recordPath проходит точки Record с включенной записью и возвращает агента на старт
func (s *Simulation) recordPath() {
	if len(s.scenario.Record) == 0 {
		return
	}

	start := s.world.Self().Pos
	s.engine.StartRecording()
	for _, pos := range s.scenario.Record {
		s.world.Teleport(pos)
		s.engine.Tick(s.world.Snapshot())
	}
	s.engine.StopRecording()
	s.world.Teleport(start)
}

// Run гоняет сценарий до конца тиков или пока все мобы не убиты
func (s *Simulation) Run() Result {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"scenario":  s.scenario.Name,
	})

	s.recordPath()
	s.engine.Start()

	alive := s.world.Alive()
	total := alive
	for s.tick = 0; s.tick < s.scenario.Ticks; s.tick++ {
		s.engine.Tick(s.world.Snapshot())
		s.world.Step()
		s.clock.Advance(s.scenario.Tick)

		if now := s.world.Alive(); now != alive {
			alive = now
			log.WithFields(logrus.Fields{
				"tick":  s.tick,
				"alive": alive,
			}).Info("Mob count changed")
		}
		if total > 0 && alive == 0 {
			s.tick++
			break
		}
	}
	s.engine.Stop()

	res := Result{
		Ticks:    s.tick,
		Kills:    total - alive,
		Commands: len(s.recorder.Commands()),
		Status:   s.engine.Status(),
	}
	for _, k := range domain.ControlKeys {
		res.KeyDowns += s.recorder.Count(k, true)
	}
	log.WithFields(logrus.Fields{
		"ticks": res.Ticks,
		"kills": res.Kills,
	}).Info("Simulation finished")
	return res
}
