package systems

import (
	"math"
	"time"

	"github.com/FentusGames/StockPile/internal/domain"
)

// Thresholds - пороги принятия решений (ялмы и радианы)
type Thresholds struct {
	ToleranceYaw   float64 // Допуск по рысканию
	ToleranceZ     float64 // Допуск по высоте
	RangeNewTarget float64 // Радиус поиска новой цели
	RangeEngage    float64 // Дистанция вступления в бой
	RangeAttacking float64 // Дистанция, на которой перестаем идти вперед
	RangeMinimum   float64 // Ближе этого пятимся назад (только с локом)
}

// Кулдауны действий
const (
	ReselectAfterAcquire = 5 * time.Second
	ReselectCooldown     = 3 * time.Second
	AttackCooldown       = 3 * time.Second
)

// Cooldowns - сколько времени прошло с момента каждого действия
type Cooldowns struct {
	SinceAcquired time.Duration
	SinceSelect   time.Duration
	SinceAttack   time.Duration
}

// elapsed сравнивает в целых секундах: действие доступно с начала секунды, а не с ее доли
func elapsed(d, threshold time.Duration) bool {
	return d.Truncate(time.Second) >= threshold
}

// Engagement - то, что известно о текущей цели на этом тике
type Engagement struct {
	Distance float64 // Линейная дистанция до цели
	Delta    float64 // HeadingDelta на цель
	// HasTarget - в клиенте выбрана цель (внешний выбор или наш /target)
	HasTarget bool
	Locked    bool
	Moving    bool
}

// Facing - смотрим ли на цель в пределах допуска
func (e Engagement) Facing(th Thresholds) bool {
	return math.Abs(e.Delta) < th.ToleranceYaw
}

// turnToward выбирает клавишу поворота по знаку delta: минус - вправо, плюс - влево
func turnToward(delta float64) domain.Key {
	switch {
	case delta < 0:
		return domain.KeyTurnRight
	case delta > 0:
		return domain.KeyTurnLeft
	}
	return domain.KeyUnknown
}
