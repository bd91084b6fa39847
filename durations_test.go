package typewriter

import (
	"testing"
	"time"
)

func TestDuration_OverrideAndFallback(t *testing.T) {
	cd := New(50*time.Millisecond, map[rune]time.Duration{
		' ': 100 * time.Millisecond,
		',': 100 * time.Millisecond,
		'.': 200 * time.Millisecond,
	})

	tests := []struct {
		r    rune
		want time.Duration
	}{
		{' ', 100 * time.Millisecond},
		{',', 100 * time.Millisecond},
		{'.', 200 * time.Millisecond},
		{'b', 50 * time.Millisecond}, // falls back to default
		{'é', 50 * time.Millisecond},
		{'世', 50 * time.Millisecond},
		{'\n', 50 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := cd.Duration(tt.r); got != tt.want {
			t.Fatalf("Duration(%q) = %v; want %v", tt.r, got, tt.want)
		}
	}
}

func TestDuration_EmptyMap(t *testing.T) {
	cd := New(40*time.Millisecond, nil)
	for _, r := range "a .\né世" {
		if got := cd.Duration(r); got != 40*time.Millisecond {
			t.Fatalf("Duration(%q) = %v; want default 40ms", r, got)
		}
	}
}

func TestNew_CopiesMap(t *testing.T) {
	m := map[rune]time.Duration{' ': time.Second}
	cd := New(0, m)
	m[' '] = 0
	m['x'] = time.Minute
	if got := cd.Duration(' '); got != time.Second {
		t.Fatalf("Duration(' ') = %v after caller mutation; want 1s", got)
	}
	if got := cd.Duration('x'); got != 0 {
		t.Fatalf("Duration('x') = %v after caller mutation; want 0", got)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := New(10*time.Millisecond, map[rune]time.Duration{' ': 0})
	b := New(10*time.Millisecond, map[rune]time.Duration{' ': 0})
	c := New(10*time.Millisecond, map[rune]time.Duration{' ': time.Second})
	d := New(20*time.Millisecond, map[rune]time.Duration{' ': 0})

	if !a.Equal(b) {
		t.Fatalf("identical tables not Equal")
	}
	if a.Equal(c) {
		t.Fatalf("tables with different overrides reported Equal")
	}
	if a.Equal(d) {
		t.Fatalf("tables with different defaults reported Equal")
	}

	clone := a.Clone()
	if !a.Equal(clone) {
		t.Fatalf("clone not Equal to original")
	}

	// Empty and nil override maps compare equal.
	if !New(time.Second, nil).Equal(New(time.Second, map[rune]time.Duration{})) {
		t.Fatalf("nil vs empty override map not Equal")
	}
}
