package systems

import (
	"math"
	"strings"

	"github.com/FentusGames/StockPile/internal/domain"
)

// Allowlist - имена, которые разрешено атаковать
type Allowlist interface {
	Contains(name string) bool
}

// Candidate - найденная цель
type Candidate struct {
	Target   domain.TargetRef
	Distance float64
}

// AcquireTarget ищет ближайшего подходящего моба в снапшоте.
//
// Кандидат: в радиусе RangeNewTarget, актор резолвится, HP > 0, это моб (SpawnMob),
// разница по высоте в допуске, обрезанное имя есть в allow-листе.
// При равной дистанции побеждает первый по порядку слотов (строгое <).
func AcquireTarget(snap domain.Snapshot, allow Allowlist, th Thresholds) (Candidate, bool) {
	var best Candidate
	found := false
	bestDist := math.MaxFloat64

	for i := range snap.Entities {
		e := &snap.Entities[i]

		dist := domain.LinearDistance(e.DistanceSq)
		if dist > th.RangeNewTarget || !e.Valid || e.HPPercent <= 0 || e.SpawnFlags != domain.SpawnMob {
			continue
		}
		// Высота сравнивается через корень модуля разницы (так считает клиентский плагин)
		if math.Sqrt(math.Abs(snap.Self.Pos.Z-e.Pos.Z)) >= th.ToleranceZ {
			continue
		}

		name := strings.TrimSpace(e.Name)
		if !allow.Contains(name) {
			continue
		}

		if dist < bestDist {
			bestDist = dist
			best = Candidate{Target: domain.NewTargetRef(e.Index, name), Distance: dist}
			found = true
		}
	}

	return best, found
}

// Причины сброса цели
const (
	ReasonGone         = "gone"
	ReasonOutOfRange   = "out_of_range"
	ReasonClaimedOther = "claimed_by_other"
	ReasonNoHP         = "no_hp"
	ReasonInvalidActor = "invalid_actor"
	ReasonDead         = "dead"
)

// ValidationResult - результат проверки текущей цели
type ValidationResult struct {
	Target   domain.Entity
	Distance float64
	Valid    bool
	Reason   string // Почему цель сброшена, если Valid == false
}

// ValidateTarget перепроверяет цель каждый тик.
// Сброс: слот пропал, дистанция > RangeNewTarget (граница та же, что у AcquireTarget), клейм чужой, HP 0, актор не резолвится, статус "мертв".
func ValidateTarget(snap domain.Snapshot, ref domain.TargetRef, th Thresholds) ValidationResult {
	if !ref.Valid() {
		return ValidationResult{Reason: ReasonGone}
	}

	e, ok := snap.Lookup(ref.Index)
	if !ok {
		return ValidationResult{Reason: ReasonGone}
	}

	res := ValidationResult{Target: e, Distance: domain.LinearDistance(e.DistanceSq)}

	claimed := e.ClaimID == snap.Self.ServerID || e.ClaimID == 0

	switch {
	case res.Distance > th.RangeNewTarget:
		res.Reason = ReasonOutOfRange
	case !claimed:
		res.Reason = ReasonClaimedOther
	case e.HPPercent == 0:
		res.Reason = ReasonNoHP
	case !e.Valid:
		res.Reason = ReasonInvalidActor
	case domain.IsDeadStatus(e.Status):
		res.Reason = ReasonDead
	default:
		res.Valid = true
	}
	return res
}
