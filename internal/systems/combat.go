package systems

import (
	"github.com/FentusGames/StockPile/internal/domain"
)

// Rotation - решение фазы поворота
type Rotation struct {
	Turn domain.Key // KeyTurnLeft / KeyTurnRight / KeyUnknown
}

// DecideRotation: без лока и дальше RangeEngage доворачиваем на цель, если не смотрим на нее.
func DecideRotation(e Engagement, th Thresholds) Rotation {
	if e.Locked || e.Distance < th.RangeEngage || e.Facing(th) {
		return Rotation{}
	}
	return Rotation{Turn: turnToward(e.Delta)}
}

// Actions - решение фазы боевых команд
type Actions struct {
	// Reselect - повторно выбрать цель командой /target (клиент "завис" без лока)
	Reselect bool
	// Attack - отправить /attack
	Attack bool
}

// DecideActions решает, какие команды отправить на этом тике. С локом команд нет.
func DecideActions(e Engagement, th Thresholds, cd Cooldowns) Actions {
	var a Actions
	if e.Locked {
		return a
	}

	inAttackBracket := e.Distance >= th.RangeAttacking && e.Distance < th.RangeEngage
	if elapsed(cd.SinceAcquired, ReselectAfterAcquire) && inAttackBracket && elapsed(cd.SinceSelect, ReselectCooldown) {
		a.Reselect = true
	}

	if e.HasTarget && e.Distance < th.RangeEngage && elapsed(cd.SinceAttack, AttackCooldown) {
		a.Attack = true
	}
	return a
}
