package components

import "github.com/yohamta/donburi"

// RegistryData tracks the entities a round reset has to reach, in the order
// they were registered.
type RegistryData struct {
	Patterns    []*donburi.Entry
	CancelAreas []*donburi.Entry
}

var Registry = donburi.NewComponentType[RegistryData]()

// RegisterPattern appends a pattern to the scheduling order.
func (r *RegistryData) RegisterPattern(e *donburi.Entry) {
	r.Patterns = append(r.Patterns, e)
}

// RegisterCancelArea tracks a bullet cancel area.
func (r *RegistryData) RegisterCancelArea(e *donburi.Entry) {
	r.CancelAreas = append(r.CancelAreas, e)
}

// Compact drops entries that were removed from the world, keeping order.
func (r *RegistryData) Compact() {
	r.Patterns = compactEntries(r.Patterns)
	r.CancelAreas = compactEntries(r.CancelAreas)
}

func compactEntries(entries []*donburi.Entry) []*donburi.Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e != nil && e.Valid() {
			kept = append(kept, e)
		}
	}
	clear(entries[len(kept):])
	return kept
}
