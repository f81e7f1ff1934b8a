package domain

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want float64
	}{
		{"same point", Position{1, 2, 3}, Position{1, 2, 3}, 0},
		{"axis x", Position{0, 0, 0}, Position{10, 0, 0}, 10},
		{"3-4-5 plane", Position{0, 0, 0}, Position{3, 4, 0}, 5},
		{"with height", Position{1, 1, 1}, Position{3, 3, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > eps {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHorizontalDistanceIgnoresHeight(t *testing.T) {
	got := HorizontalDistance(Position{0, 0, 0}, Position{3, 4, 100})
	if math.Abs(got-5) > eps {
		t.Errorf("HorizontalDistance() = %v, want 5", got)
	}
}

func TestLinearDistance(t *testing.T) {
	if got := LinearDistance(100); got != 10 {
		t.Errorf("LinearDistance(100) = %v, want 10", got)
	}
	if got := LinearDistance(-1); got != 0 {
		t.Errorf("LinearDistance(-1) = %v, want 0", got)
	}
}

func TestHeadingDelta(t *testing.T) {
	origin := Position{}

	tests := []struct {
		name    string
		heading float64
		tx, ty  float64
		want    float64
	}{
		{"straight ahead", 0, 10, 0, 0},
		{"target at -y is +pi/2", 0, 0, -10, math.Pi / 2},
		{"target at +y is -pi/2", 0, 0, 10, -math.Pi / 2},
		{"wraps below -pi", 3, -10, 1, math.Atan2(-1, -10) - 3 + 2*math.Pi},
		{"wraps above pi", -3, -10, -1, math.Atan2(1, -10) + 3 - 2*math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeadingDelta(origin, tt.heading, tt.tx, tt.ty)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("HeadingDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeadingDeltaRange(t *testing.T) {
	self := Position{X: 5, Y: -3}
	for h := -10.0; h <= 10.0; h += 0.37 {
		for a := 0.0; a < 2*math.Pi; a += 0.29 {
			got := HeadingDelta(self, h, self.X+math.Cos(a)*7, self.Y+math.Sin(a)*7)
			if got <= -math.Pi || got > math.Pi {
				t.Fatalf("HeadingDelta(h=%v, a=%v) = %v, out of (-pi, pi]", h, a, got)
			}
		}
	}
}

func TestHeadingDeltaDegenerate(t *testing.T) {
	// Цель совпадает с позицией: atan2(0, 0) = 0, значит delta = -heading
	self := Position{X: 4, Y: 4}
	got := HeadingDelta(self, 1.5, self.X, self.Y)
	if math.Abs(got-(-1.5)) > eps {
		t.Errorf("HeadingDelta() = %v, want -1.5", got)
	}
	if got := HeadingDelta(self, -math.Pi, self.X, self.Y); got != math.Pi {
		t.Errorf("HeadingDelta() with heading -pi = %v, want pi", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{7 * math.Pi / 2, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
