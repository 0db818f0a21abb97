package hal

import (
	"testing"
	"time"
)

func TestSignalLevel(t *testing.T) {
	s := newSignal(10*time.Second, 2*time.Second)

	tests := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{3 * time.Second, false},
		{11 * time.Second, true},
		{12 * time.Second, false},
	}
	for _, tt := range tests {
		if got := s.level(uint64(tt.at.Microseconds())); got != tt.want {
			t.Fatalf("level(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestSignalClampsHigh(t *testing.T) {
	s := newSignal(time.Second, 2*time.Second)
	if !s.level(999_999) {
		t.Fatal("level() = false with high >= period, want always true")
	}
}

type edgeRecord struct {
	b  Button
	e  Edge
	at uint64
}

func TestVirtualButtonsEmitOnlyOnChange(t *testing.T) {
	clock := &stepClock{}
	b := newVirtualButtons(clock)

	var got []edgeRecord
	b.SetEdgeHandler(func(btn Button, e Edge, at uint64) {
		got = append(got, edgeRecord{btn, e, at})
	})

	b.Set(ButtonB, true)
	clock.advance(5 * time.Millisecond)
	b.Set(ButtonB, true)
	b.Set(ButtonB, false)
	b.Set(ButtonA, false)
	b.Set(Button(9), true)

	want := []edgeRecord{
		{ButtonB, EdgeFall, 0},
		{ButtonB, EdgeRise, 5000},
	}
	if len(got) != len(want) {
		t.Fatalf("edges = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if b.Down(ButtonB) {
		t.Fatal("Down(ButtonB) = true after release, want false")
	}
}

func TestStickRaw(t *testing.T) {
	tests := []struct {
		left, right, half bool
		want              uint16
	}{
		{false, false, false, JoystickRawCenter},
		{true, true, false, JoystickRawCenter},
		{true, false, false, JoystickRawMin},
		{false, true, false, JoystickRawMax},
		{true, false, true, 1028},
		{false, true, true, 3060},
	}
	for _, tt := range tests {
		if got := stickRaw(tt.left, tt.right, tt.half); got != tt.want {
			t.Fatalf("stickRaw(%v, %v, %v) = %d, want %d", tt.left, tt.right, tt.half, got, tt.want)
		}
	}
}
