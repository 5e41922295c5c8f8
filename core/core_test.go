package core

import "testing"

func TestCellWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Cell
		want Cell
	}{
		{"inside", Cell{3, 4}, Cell{3, 4}},
		{"right edge", Cell{10, 2}, Cell{0, 2}},
		{"left edge", Cell{-1, 2}, Cell{9, 2}},
		{"top edge", Cell{5, -1}, Cell{5, 9}},
		{"bottom edge", Cell{5, 10}, Cell{5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Wrap(10, 10); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCellClamp(t *testing.T) {
	if got := (Cell{-3, 12}).Clamp(10, 10); got != (Cell{0, 9}) {
		t.Errorf("Expected {0 9}, got %v", got)
	}
	if got := (Cell{4, 4}).Clamp(10, 10); got != (Cell{4, 4}) {
		t.Errorf("Expected unchanged cell, got %v", got)
	}
}

func TestDirectionReverses(t *testing.T) {
	if !DirLeft.Reverses(DirRight) {
		t.Error("Expected left to reverse right")
	}
	if DirUp.Reverses(DirRight) {
		t.Error("Expected up not to reverse right")
	}
	if DirLeft.Reverses(DirNone) {
		t.Error("Nothing reverses a stationary snake")
	}
}

func TestParseGameMode(t *testing.T) {
	if m, err := ParseGameMode("accelerated"); err != nil || m != ModeAccelerated {
		t.Errorf("Expected accelerated, got %v (%v)", m, err)
	}
	if _, err := ParseGameMode("turbo"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestSoundTypeNamesRoundTrip(t *testing.T) {
	for st := SoundType(0); st < SoundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Expected %v to parse back, got %v (%v)", st, got, ok)
		}
	}
}
