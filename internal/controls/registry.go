package controls

import (
	"github.com/FentusGames/StockPile/internal/domain"
	"github.com/FentusGames/StockPile/internal/sink"
	"github.com/FentusGames/StockPile/pkg/logger"

	"github.com/sirupsen/logrus"
)

// KeyState - желаемое и последнее отправленное состояние клавиши
type KeyState struct {
	Desired bool
	Active  bool
}

// Registry превращает желаемое состояние клавиш в минимальный набор down/up событий.
// Active меняется только вместе с отправкой события.
type Registry struct {
	keys map[domain.Key]*KeyState
	out  sink.Sink
}

// NewRegistry создает реестр для клавиш движения (domain.ControlKeys)
func NewRegistry(out sink.Sink) *Registry {
	r := &Registry{
		keys: make(map[domain.Key]*KeyState, len(domain.ControlKeys)),
		out:  out,
	}
	for _, k := range domain.ControlKeys {
		r.keys[k] = &KeyState{}
	}
	return r
}

// SetDesired запоминает желаемое состояние. Внутри тика важен только последний вызов.
func (r *Registry) SetDesired(key domain.Key, on bool) {
	st, ok := r.keys[key]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "controls",
			"key":       key.String(),
		}).Warn("SetDesired on unmanaged key ignored")
		return
	}
	st.Desired = on
}

// Reset сбрасывает желаемое состояние всех клавиш (начало тика / пауза)
func (r *Registry) Reset() {
	for _, st := range r.keys {
		st.Desired = false
	}
}

// Reload немедленно отпускает все активные клавиши и сбрасывает желаемое состояние.
// Отправляет ровно одно up на каждую активную клавишу и ни одного down.
func (r *Registry) Reload() {
	released := 0
	for _, k := range domain.ControlKeys {
		st := r.keys[k]
		st.Desired = false
		if st.Active {
			r.out.SendKey(k, false)
			st.Active = false
			released++
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "controls",
		"released":  released,
	}).Debug("Controls reloaded")
}

// Commit отправляет переходы для клавиш, у которых desired != active.
// Вызывается один раз за тик после всех SetDesired.
func (r *Registry) Commit() {
	for _, k := range domain.ControlKeys {
		st := r.keys[k]
		if st.Desired == st.Active {
			continue
		}
		r.out.SendKey(k, st.Desired)
		st.Active = st.Desired
	}
}

// Desired возвращает желаемое состояние клавиши на текущем тике
func (r *Registry) Desired(key domain.Key) bool {
	if st, ok := r.keys[key]; ok {
		return st.Desired
	}
	return false
}

// Active возвращает последнее отправленное состояние клавиши
func (r *Registry) Active(key domain.Key) bool {
	if st, ok := r.keys[key]; ok {
		return st.Active
	}
	return false
}

// ActiveKeys - список зажатых клавиш в порядке опроса
func (r *Registry) ActiveKeys() []domain.Key {
	var out []domain.Key
	for _, k := range domain.ControlKeys {
		if r.keys[k].Active {
			out = append(out, k)
		}
	}
	return out
}
