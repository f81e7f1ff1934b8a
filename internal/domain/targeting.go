package domain

// NoValidTarget - текст для отображения отсутствующей цели
const NoValidTarget = "No Valid Target"

// TargetRef - ссылка на текущую цель бота. Нулевое значение - цели нет.
type TargetRef struct {
	Index int
	Name  string
	set   bool
}

// NewTargetRef создает ссылку на цель в слоте index
func NewTargetRef(index int, name string) TargetRef {
	return TargetRef{Index: index, Name: name, set: true}
}

// Valid - есть ли цель
func (t TargetRef) Valid() bool {
	return t.set
}

// DisplayName возвращает имя цели или NoValidTarget
func (t TargetRef) DisplayName() string {
	if !t.set || t.Name == "" {
		return NoValidTarget
	}
	return t.Name
}

// DisplayIndex возвращает индекс цели или -1 (так его показывает статус-панель)
func (t TargetRef) DisplayIndex() int {
	if !t.set {
		return -1
	}
	return t.Index
}

// TargetingState принадлежит движку боя и меняется один раз за тик
type TargetingState struct {
	Current  TargetRef
	Distance float64
	// HasTarget - в клиенте выбрана цель (внешний выбор или наш /target)
	HasTarget bool
	HasLock   bool
}

// Drop сбрасывает цель в "нет цели"
func (s *TargetingState) Drop() {
	s.Current = TargetRef{}
	s.HasTarget = false
}
