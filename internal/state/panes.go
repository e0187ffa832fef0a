package state

import (
	"slices"

	"github.com/justinpbarnett/panedock/internal/dock"
)

// Panes is the ordered identity collection. Ids are never reused.
type Panes struct {
	ids    []dock.Identity
	nextID int
}

// Add appends a pane with a fresh id and returns its identity.
func (p *Panes) Add() dock.Identity {
	p.nextID++
	id := dock.Identity{ID: p.nextID}
	p.ids = append(p.ids, id)
	return id
}

// RemoveAt removes the identity at logical index i. It reports false when i
// is out of range.
func (p *Panes) RemoveAt(i int) bool {
	if i < 0 || i >= len(p.ids) {
		return false
	}
	p.ids = slices.Delete(p.ids, i, i+1)
	return true
}

// Identities returns a copy of the collection in logical order.
func (p *Panes) Identities() []dock.Identity {
	return slices.Clone(p.ids)
}

func (p *Panes) Len() int {
	return len(p.ids)
}
