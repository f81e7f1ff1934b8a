package domain

// SpawnFlags сущности (entity.SpawnFlags клиента)
const (
	SpawnPlayer uint8 = 0x01
	SpawnNPC    uint8 = 0x02
	SpawnSelf   uint8 = 0x0D
	SpawnMob    uint8 = 0x10
)

// Серверные статусы, при которых сущность считается мертвой
const (
	StatusDead    = 2
	StatusDeadAlt = 3
)

// IsDeadStatus - true для статусов "мертв" (2) и "мертв, ожидает рейза" (3)
func IsDeadStatus(status int) bool {
	return status == StatusDead || status == StatusDeadAlt
}

// Agent - управляемый персонаж на текущем тике
type Agent struct {
	Index    int      `yaml:"index"`     // Индекс слота в таблице сущностей
	ServerID uint32   `yaml:"server_id"` // Серверный ID (сравнивается с владельцем клейма)
	Pos      Position `yaml:"pos"`
	Heading  float64  `yaml:"heading"`
	Status   int      `yaml:"status"`
	Zone     int      `yaml:"zone"`
}

// Entity - одна видимая сущность в слоте снапшота
type Entity struct {
	Index      int      `yaml:"index"`
	Name       string   `yaml:"name"`
	Pos        Position `yaml:"pos"`
	Heading    float64  `yaml:"heading"`
	HPPercent  int      `yaml:"hp"`
	ClaimID    uint32   `yaml:"claim"`       // 0 - никем не заклеймлен
	SpawnFlags uint8    `yaml:"spawn_flags"` // SpawnMob и т.д.
	DistanceSq float64  `yaml:"-"`           // Квадрат дистанции до агента, как отдает клиент
	Valid      bool     `yaml:"valid"`       // Актор-указатель резолвится
	Status     int      `yaml:"status"`
}

// Snapshot - неизменяемый срез мира на один тик.
// Движок не хранит ссылки на снапшот после завершения тика.
type Snapshot struct {
	Self Agent
	// TargetIndex - цель, выбранная в клиенте (саб-таргет имеет приоритет). 0 - цели нет.
	TargetIndex int
	// Locked - в клиенте активен лок на цель
	Locked bool
	// Entities упорядочены по индексу слота
	Entities []Entity
}

// Lookup ищет сущность по индексу слота.
// Индексы переиспользуются после деспауна, поэтому "найдена" еще не значит "та же самая".
func (s Snapshot) Lookup(index int) (Entity, bool) {
	for i := range s.Entities {
		if s.Entities[i].Index == index {
			return s.Entities[i], true
		}
	}
	return Entity{}, false
}

// HasTarget - выбрана ли в клиенте какая-то цель
func (s Snapshot) HasTarget() bool {
	return s.TargetIndex != 0
}
