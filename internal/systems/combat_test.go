package systems

import (
	"testing"
	"time"

	"github.com/FentusGames/StockPile/internal/domain"
)

func TestDecideRotation(t *testing.T) {
	tests := []struct {
		name string
		e    Engagement
		want domain.Key
	}{
		{"aligned far target", Engagement{Distance: 20, Delta: 0}, domain.KeyUnknown},
		{"far target on the right", Engagement{Distance: 20, Delta: -1}, domain.KeyTurnRight},
		{"far target on the left", Engagement{Distance: 20, Delta: 1}, domain.KeyTurnLeft},
		{"within yaw tolerance", Engagement{Distance: 20, Delta: 0.2}, domain.KeyUnknown},
		{"inside engage range", Engagement{Distance: 10, Delta: 1}, domain.KeyUnknown},
		{"exactly engage range", Engagement{Distance: 19, Delta: -0.3}, domain.KeyTurnRight},
		{"locked", Engagement{Distance: 20, Delta: 1, Locked: true}, domain.KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideRotation(tt.e, defaultThresholds).Turn; got != tt.want {
				t.Errorf("Turn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecideActions(t *testing.T) {
	ready := Cooldowns{SinceAcquired: 10 * time.Second, SinceSelect: 10 * time.Second, SinceAttack: 10 * time.Second}

	tests := []struct {
		name string
		e    Engagement
		cd   Cooldowns
		want Actions
	}{
		{
			name: "attack and reselect in bracket",
			e:    Engagement{Distance: 10, HasTarget: true},
			cd:   ready,
			want: Actions{Reselect: true, Attack: true},
		},
		{
			name: "no client target means no attack",
			e:    Engagement{Distance: 10},
			cd:   ready,
			want: Actions{Reselect: true},
		},
		{
			name: "too close to reselect, still attacks",
			e:    Engagement{Distance: 2, HasTarget: true},
			cd:   ready,
			want: Actions{Attack: true},
		},
		{
			name: "out of engage range",
			e:    Engagement{Distance: 19, HasTarget: true},
			cd:   ready,
			want: Actions{},
		},
		{
			name: "locked suppresses commands",
			e:    Engagement{Distance: 10, HasTarget: true, Locked: true},
			cd:   ready,
			want: Actions{},
		},
		{
			name: "fresh acquisition waits 5s before reselect",
			e:    Engagement{Distance: 10, HasTarget: true},
			cd:   Cooldowns{SinceAcquired: 4900 * time.Millisecond, SinceSelect: time.Minute, SinceAttack: time.Minute},
			want: Actions{Attack: true},
		},
		{
			name: "cooldowns truncate to whole seconds",
			e:    Engagement{Distance: 10, HasTarget: true},
			cd:   Cooldowns{SinceAcquired: time.Minute, SinceSelect: 2999 * time.Millisecond, SinceAttack: 3 * time.Second},
			want: Actions{Attack: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideActions(tt.e, defaultThresholds, tt.cd); got != tt.want {
				t.Errorf("DecideActions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
