package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestRegistryCompactKeepsOrder(t *testing.T) {
	w := donburi.NewWorld()
	r := &RegistryData{}
	var entries []*donburi.Entry
	for i := 0; i < 4; i++ {
		e := w.Entry(w.Create(AttackPattern))
		AttackPattern.Get(e).Name = string(rune('a' + i))
		entries = append(entries, e)
		r.RegisterPattern(e)
	}
	w.Remove(entries[1].Entity())

	r.Compact()

	if len(r.Patterns) != 3 {
		t.Fatalf("Expected 3 patterns, got %d", len(r.Patterns))
	}
	names := ""
	for _, e := range r.Patterns {
		names += AttackPattern.Get(e).Name
	}
	if names != "acd" {
		t.Errorf("Expected order acd, got %s", names)
	}
}
