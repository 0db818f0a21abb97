package sim

import (
	"testing"

	"galton/board/geometry"
)

// scripted replays draws in order, repeating the last one.
type scripted struct {
	draws []int
	n     int
}

func (s *scripted) Intn(n int) int {
	if len(s.draws) == 0 {
		return 0
	}
	i := s.n
	if i >= len(s.draws) {
		i = len(s.draws) - 1
	}
	s.n++
	return s.draws[i] % n
}

func runUntilLanded(t *testing.T, e *Engine, b float64) {
	t.Helper()
	for tick := 0; tick < 200 && e.Active() > 0; tick++ {
		e.Advance(b)
	}
	if e.Active() != 0 {
		t.Fatalf("Active() = %d after 200 ticks, want 0", e.Active())
	}
}

func TestDeflectThreshold(t *testing.T) {
	tests := []struct {
		bias float64
		want int
	}{
		{0, 50},
		{1, 90},
		{-1, 10},
		{0.5, 70},
		{0.01, 50},
		{0.02, 51},
		{5, 95},
		{-5, 5},
	}
	for _, tt := range tests {
		if got := DeflectThreshold(tt.bias); got != tt.want {
			t.Fatalf("DeflectThreshold(%v) = %d, want %d", tt.bias, got, tt.want)
		}
	}
}

func TestCenteredBallLandsDeterministically(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		want  int
	}{
		{"always right", []int{0}, 11},
		{"always left", []int{99}, 1},
		{"alternating", []int{0, 99, 0, 99, 0, 99, 0, 99, 0, 99, 0, 99}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(geometry.Default(), &scripted{draws: tt.draws})
			if !e.Spawn() {
				t.Fatal("Spawn() = false, want true")
			}
			runUntilLanded(t, e, 0)

			if got := e.Bin(tt.want); got != 1 {
				t.Fatalf("Bins() = %v, want one ball in bin %d", e.Bins(), tt.want)
			}
			if e.Total() != 1 {
				t.Fatalf("Total() = %d, want 1", e.Total())
			}
		})
	}
}

func TestOneDeflectionPerRow(t *testing.T) {
	r := &scripted{draws: []int{0}}
	e := New(geometry.Default(), r)
	e.Spawn()
	runUntilLanded(t, e, 0)
	if r.n != e.Layout().PinRows {
		t.Fatalf("deflections = %d, want %d (one per row)", r.n, e.Layout().PinRows)
	}
}

func TestBiasSkewsDecision(t *testing.T) {
	// A draw of 60 bounces left at threshold 50 and right at threshold 90.
	left := New(geometry.Default(), &scripted{draws: []int{60}})
	left.Spawn()
	runUntilLanded(t, left, 0)

	right := New(geometry.Default(), &scripted{draws: []int{60}})
	right.Spawn()
	runUntilLanded(t, right, 1)

	if left.Bin(1) != 1 || right.Bin(11) != 1 {
		t.Fatalf("bins at bias 0 = %v, at bias 1 = %v", left.Bins(), right.Bins())
	}
}

func TestSpawnFullPoolIsNoop(t *testing.T) {
	e := New(geometry.Default(), NewXorshift32(1))
	for i := 0; i < MaxBalls; i++ {
		if !e.Spawn() {
			t.Fatalf("Spawn() #%d = false, want true", i)
		}
	}
	e.Advance(0)

	before := *e
	if e.Spawn() {
		t.Fatal("Spawn() on full pool = true, want false")
	}
	if e.balls != before.balls || e.active != before.active || e.total != before.total {
		t.Fatal("Spawn() on full pool changed engine state")
	}
	if e.Active() != MaxBalls {
		t.Fatalf("Active() = %d, want %d", e.Active(), MaxBalls)
	}
}

func TestSlotReuseAfterLanding(t *testing.T) {
	e := New(geometry.Default(), NewXorshift32(7))
	for i := 0; i < MaxBalls; i++ {
		e.Spawn()
	}
	runUntilLanded(t, e, 0)
	if !e.Spawn() {
		t.Fatal("Spawn() after all balls landed = false, want true")
	}
	if e.Total() != MaxBalls {
		t.Fatalf("Total() = %d, want %d", e.Total(), MaxBalls)
	}
}

func TestInvariantsUnderRandomLoad(t *testing.T) {
	l := geometry.Default()
	e := New(l, NewXorshift32(0xC0FFEE))
	drive := NewXorshift32(42)

	for tick := 0; tick < 5000; tick++ {
		if drive.Intn(3) == 0 {
			e.Spawn()
		}
		b := float64(drive.Intn(201)-100) / 100
		e.Advance(b)

		var sum uint64
		for _, c := range e.Bins() {
			sum += uint64(c)
		}
		if sum != e.Total() {
			t.Fatalf("tick %d: sum(bins) = %d, Total() = %d", tick, sum, e.Total())
		}
		e.Each(func(b Ball) {
			if b.X < 0 || b.X >= float64(l.Width) {
				t.Fatalf("tick %d: ball x = %v outside [0, %d)", tick, b.X, l.Width)
			}
		})
	}
	if e.Total() == 0 {
		t.Fatal("Total() = 0 after 5000 ticks, want landings")
	}
}

func TestReset(t *testing.T) {
	e := New(geometry.Default(), &scripted{draws: []int{0}})
	e.Spawn()
	runUntilLanded(t, e, 0)
	e.Spawn()
	e.Reset()
	if e.Total() != 0 || e.Active() != 0 || e.MaxBin() != 0 {
		t.Fatalf("after Reset: total=%d active=%d max=%d", e.Total(), e.Active(), e.MaxBin())
	}
}

func TestXorshiftRange(t *testing.T) {
	r := NewXorshift32(0)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(100); v < 0 || v >= 100 {
			t.Fatalf("Intn(100) = %d", v)
		}
	}
	if FoldSeed(0) == 0 {
		t.Fatal("FoldSeed(0) = 0, want non-zero")
	}
}
