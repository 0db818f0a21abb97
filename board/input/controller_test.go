package input

import "testing"

const (
	debounce = 150_000
	repeat   = 100_000
)

type countingSpawner struct {
	calls int
	room  int
}

func (s *countingSpawner) Spawn() bool {
	s.calls++
	if s.room <= 0 {
		return false
	}
	s.room--
	return true
}

func newTestController() (*Controller, *Button, *Button) {
	spawn := NewButton(debounce)
	view := NewButton(debounce)
	return NewController(spawn, view, repeat), spawn, view
}

func TestFirstPressAlwaysAccepted(t *testing.T) {
	b := NewButton(debounce)
	b.Edge(EdgeFall, 0)
	if !b.TakePress() {
		t.Fatal("TakePress() = false after first press at t=0, want true")
	}
}

func TestDebounceWindow(t *testing.T) {
	tests := []struct {
		name   string
		second uint64
		want   bool
	}{
		{"bounce", 1_000, false},
		{"edge of window", debounce, false},
		{"after window", debounce + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewButton(debounce)
			b.Edge(EdgeFall, 10)
			b.TakePress()
			b.Edge(EdgeFall, 10+tt.second)
			if got := b.TakePress(); got != tt.want {
				t.Fatalf("TakePress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoubleToggleInsideWindowRegistersOnce(t *testing.T) {
	c, _, view := newTestController()
	s := &countingSpawner{room: 10}

	view.Edge(EdgeFall, 1_000_000)
	view.Edge(EdgeRise, 1_010_000)
	view.Edge(EdgeFall, 1_050_000)
	c.Update(1_060_000, s)
	c.Update(1_090_000, s)

	if c.View() != ViewHistogram {
		t.Fatalf("View() = %v, want %v", c.View(), ViewHistogram)
	}
}

func TestButtonsDebounceIndependently(t *testing.T) {
	c, spawn, view := newTestController()
	s := &countingSpawner{room: 10}

	spawn.Edge(EdgeFall, 500_000)
	spawn.Edge(EdgeRise, 510_000)
	view.Edge(EdgeFall, 520_000)
	res := c.Update(530_000, s)

	if res.Spawned != 1 || !res.Toggled {
		t.Fatalf("Update() = %+v, want one spawn and a toggle", res)
	}
}

func TestPressSpawnsOnce(t *testing.T) {
	c, spawn, _ := newTestController()
	s := &countingSpawner{room: 10}

	spawn.Edge(EdgeFall, 1_000_000)
	spawn.Edge(EdgeRise, 1_020_000)
	c.Update(1_030_000, s)
	c.Update(1_060_000, s)

	if s.calls != 1 {
		t.Fatalf("Spawn() calls = %d, want 1", s.calls)
	}
}

func TestHoldRepeatsAtInterval(t *testing.T) {
	c, spawn, _ := newTestController()
	s := &countingSpawner{room: 100}

	spawn.Edge(EdgeFall, 1_000_000)
	for now := uint64(1_000_000); now < 2_000_000; now += 30_000 {
		c.Update(now, s)
	}
	spawn.Edge(EdgeRise, 2_000_000)
	held := s.calls
	c.Update(2_500_000, s)

	// The press itself plus one repeat roughly every 100ms over one second.
	if held < 9 || held > 12 {
		t.Fatalf("Spawn() calls while held = %d, want 9..12", held)
	}
	if s.calls != held {
		t.Fatalf("Spawn() called after release")
	}
}

func TestSpawnSuppressedInHistogram(t *testing.T) {
	c, spawn, view := newTestController()
	s := &countingSpawner{room: 10}

	view.Edge(EdgeFall, 1_000_000)
	c.Update(1_000_000, s)

	spawn.Edge(EdgeFall, 1_100_000)
	res := c.Update(1_300_000, s)
	c.Update(1_500_000, s)

	if s.calls != 0 || res.Requested != 0 {
		t.Fatalf("Spawn() calls = %d, Requested = %d in histogram, want 0", s.calls, res.Requested)
	}
}

func TestFullPoolReported(t *testing.T) {
	c, spawn, _ := newTestController()
	s := &countingSpawner{room: 0}

	spawn.Edge(EdgeFall, 1_000_000)
	res := c.Update(1_000_000, s)
	if res.Requested != 2 || res.Spawned != 0 {
		t.Fatalf("Update() = %+v, want 2 requested, 0 spawned", res)
	}
}

func TestViewToggleIsOnlyTransition(t *testing.T) {
	c, _, view := newTestController()
	s := &countingSpawner{}

	at := uint64(1_000_000)
	want := ViewSimulation
	for i := 0; i < 4; i++ {
		if c.View() != want {
			t.Fatalf("View() = %v, want %v", c.View(), want)
		}
		c.Update(at, s)
		if c.View() != want {
			t.Fatalf("View() changed without a press")
		}
		view.Edge(EdgeFall, at)
		c.Update(at, s)
		if want == ViewSimulation {
			want = ViewHistogram
		} else {
			want = ViewSimulation
		}
		at += 200_000
	}
}
