package components

import (
	"errors"
	"testing"
)

func TestAttackPatternFireRejectsActive(t *testing.T) {
	p := &AttackPatternData{Name: "test"}

	if err := p.Fire(); err != nil {
		t.Fatalf("First Fire failed: %v", err)
	}
	err := p.Fire()
	if !errors.Is(err, ErrPatternActive) {
		t.Errorf("Expected ErrPatternActive, got %v", err)
	}
	if p.Rejections != 1 {
		t.Errorf("Expected 1 rejection, got %d", p.Rejections)
	}
	if p.Phase != PhaseStarting {
		t.Errorf("Rejected Fire should not change phase, got %v", p.Phase)
	}
}

func TestAttackPatternRestartAfterCancel(t *testing.T) {
	p := &AttackPatternData{Name: "test"}
	_ = p.Fire()
	p.Phase = PhaseRunning
	p.Frame = 12

	p.Cancel()
	if p.Active || !p.Running() {
		t.Fatal("Cancel should stop the pattern and leave finalization pending")
	}
	if err := p.Fire(); err != nil {
		t.Fatalf("Fire after cancel failed: %v", err)
	}
	if !p.TakePendingFinalize() {
		t.Error("Expected the canceled run to be owed a finalize")
	}
	if p.TakePendingFinalize() {
		t.Error("Pending finalize should be taken once")
	}
	if p.Frame != 0 || p.Phase != PhaseStarting {
		t.Errorf("Expected a fresh run, got frame=%d phase=%v", p.Frame, p.Phase)
	}
}

func TestAttackPatternRestartBeforeFirstStep(t *testing.T) {
	p := &AttackPatternData{Name: "test"}
	_ = p.Fire()
	p.Cancel()

	if err := p.Fire(); err != nil {
		t.Fatalf("Fire after cancel failed: %v", err)
	}
	if p.TakePendingFinalize() {
		t.Error("A run that never initialized should not be finalized")
	}
	if !p.Active || p.Phase != PhaseStarting {
		t.Errorf("Expected an active starting run, got active=%v phase=%v", p.Active, p.Phase)
	}
}
