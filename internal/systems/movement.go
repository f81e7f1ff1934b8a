package systems

import (
	"github.com/FentusGames/StockPile/internal/domain"
)

// Motion - решение фазы движения: не больше одной клавиши движения за тик
type Motion struct {
	Key domain.Key // KeyForward / KeyBackward / KeyUnknown (стоим)
}

// DecideMovement выбирает движение к цели или от нее.
//
// Вперед: (цель, лок, d >= RangeAttacking) || (без лока, d >= RangeAttacking) || цель двигается.
// Иначе назад: (цель, лок, d < RangeMinimum) || (цель, лок, не смотрим на цель).
// Ветки "назад без лока" нет: без лока на минимальной дистанции бот стоит.
func DecideMovement(e Engagement, th Thresholds) Motion {
	farEnough := e.Distance >= th.RangeAttacking

	if (e.HasTarget && e.Locked && farEnough) || (!e.Locked && farEnough) || e.Moving {
		return Motion{Key: domain.KeyForward}
	} else if (e.HasTarget && e.Locked && e.Distance < th.RangeMinimum) || (e.HasTarget && e.Locked && !e.Facing(th)) {
		return Motion{Key: domain.KeyBackward}
	}
	return Motion{}
}
