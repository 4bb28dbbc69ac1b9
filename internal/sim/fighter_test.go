package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-duel/internal/core"
)

func TestRepeatedMovesGoStale(t *testing.T) {
	f, err := NewFighter("kenzo", mgl32.Vec3{}, core.FacingRight)
	if err != nil {
		t.Fatalf("NewFighter: %v", err)
	}

	// Staleness is charged when the move starts. Nothing has to land for
	// the repeat to count.
	for i := 0; i < 4; i++ {
		want := float32(math.Max(float64(1-float32(i)*stalePenalty), staleFloor))
		if !f.startAttack(AttackLight) {
			t.Fatalf("use %d: startAttack refused", i)
		}
		if f.currentStale != want {
			t.Errorf("use %d: currentStale = %v, want %v", i, f.currentStale, want)
		}
		f.Machine = NewMachine()
	}

	// The window caps the penalty at the floor.
	for i := 0; i < staleWindow; i++ {
		f.startAttack(AttackLight)
		f.Machine = NewMachine()
	}
	if f.currentStale != staleFloor {
		t.Errorf("currentStale = %v, want the %v floor", f.currentStale, float32(staleFloor))
	}
}

func TestDifferentMovesStayFresh(t *testing.T) {
	f, err := NewFighter("kenzo", mgl32.Vec3{}, core.FacingRight)
	if err != nil {
		t.Fatalf("NewFighter: %v", err)
	}

	for _, kind := range []AttackKind{AttackLight, AttackHeavy, AttackMidKick} {
		if !f.startAttack(kind) {
			t.Fatalf("startAttack(%v) refused", kind)
		}
		if f.currentStale != 1 {
			t.Errorf("%v: currentStale = %v, want 1", kind, f.currentStale)
		}
		f.Machine = NewMachine()
	}
}

func TestResetRoundClearsStaleness(t *testing.T) {
	f, err := NewFighter("kenzo", mgl32.Vec3{}, core.FacingRight)
	if err != nil {
		t.Fatalf("NewFighter: %v", err)
	}

	for i := 0; i < 3; i++ {
		f.startAttack(AttackLight)
		f.Machine = NewMachine()
	}
	f.ResetRound(mgl32.Vec3{}, core.FacingRight)
	f.startAttack(AttackLight)
	if f.currentStale != 1 {
		t.Errorf("currentStale = %v after round reset, want 1", f.currentStale)
	}
}
