package sink

import (
	"fmt"
	"sync"

	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Команды клиента, которые отправляет бот
const (
	CommandAttack      = "/attack"
	CommandReleaseKeys = "/releasekeys"
)

// TargetCommand - явный выбор цели по индексу слота
func TargetCommand(index int) string {
	return fmt.Sprintf("/target %d", index)
}

// KeyCommand - текстовая форма события клавиши
func KeyCommand(key domain.Key, down bool) string {
	if down {
		return fmt.Sprintf("/sendkey %s down", key)
	}
	return fmt.Sprintf("/sendkey %s up", key)
}

// Sink принимает fire-and-forget запросы к клиенту.
// Подтверждений нет, порядок гарантирован только внутри одного тика.
type Sink interface {
	QueueCommand(text string)
	SendKey(key domain.Key, down bool)
}

// Chat отправляет все в виде текстовых команд (как очередь команд чата хоста).
type Chat struct {
	queue func(string)
}

// NewChat оборачивает функцию постановки команды в очередь хоста
func NewChat(queue func(string)) *Chat {
	return &Chat{queue: queue}
}

func (c *Chat) QueueCommand(text string) {
	logger.Log.WithField("component", "chat_sink").Debug(text)
	c.queue(text)
}

func (c *Chat) SendKey(key domain.Key, down bool) {
	c.QueueCommand(KeyCommand(key, down))
}

// Event - одно событие, записанное Recorder'ом
type Event struct {
	Command string
	Key     domain.Key
	Down    bool
	IsKey   bool
}

// String - текстовая форма события (как ее увидел бы клиент)
func (e Event) String() string {
	if e.IsKey {
		return KeyCommand(e.Key, e.Down)
	}
	return e.Command
}

// Recorder запоминает все события (тесты, транскрипт симулятора)
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) QueueCommand(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Command: text})
}

func (r *Recorder) SendKey(key domain.Key, down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Key: key, Down: down, IsKey: true})
}

// Events возвращает копию записанных событий
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Drain возвращает события и очищает буфер
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

// Count считает события клавиш key в направлении down
func (r *Recorder) Count(key domain.Key, down bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.IsKey && e.Key == key && e.Down == down {
			n++
		}
	}
	return n
}

// Commands возвращает только текстовые команды (без клавиш)
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if !e.IsKey {
			out = append(out, e.Command)
		}
	}
	return out
}

// Fanout рассылает каждое событие всем подписчикам в порядке регистрации.
type Fanout struct {
	mu    sync.RWMutex
	sinks []Sink
}

func NewFanout(sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

// Register добавляет подписчика
func (f *Fanout) Register(s Sink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks = append(f.sinks, s)
}

// Len - количество подписчиков
func (f *Fanout) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sinks)
}

func (f *Fanout) QueueCommand(text string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, s := range f.sinks {
		s.QueueCommand(text)
	}
}

func (f *Fanout) SendKey(key domain.Key, down bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.sinks) == 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "fanout_sink",
			"key":       key.String(),
			"down":      down,
		}).Warn("Key event dropped: no sinks registered")
		return
	}
	for _, s := range f.sinks {
		s.SendKey(key, down)
	}
}
