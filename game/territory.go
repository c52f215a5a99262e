package game

import (
	"fmt"
	"strings"
	"war/meta"
	"war/utils"
)

// Territory is a named region owned by a single color.
type Territory struct {
	Name   string // Bounded by meta.MAX_NAME_LENGTH
	Color  string // Owner color, bounded by meta.MAX_COLOR_LENGTH
	Troops int    // Always at least 1
}

// NewTerritory registers a territory, trimming and truncating name and color
// to their bounds. A troop count below 1 falls back to meta.DEFAULT_TROOPS.
func NewTerritory(name, color string, troops int) *Territory {
	if troops < 1 {
		troops = meta.DEFAULT_TROOPS
	}
	return &Territory{
		Name:   utils.Truncate(strings.TrimSpace(name), meta.MAX_NAME_LENGTH),
		Color:  utils.Truncate(strings.TrimSpace(color), meta.MAX_COLOR_LENGTH),
		Troops: troops,
	}
}

func (t Territory) String() string {
	return fmt.Sprintf("%s (%s, %d troops)", t.Name, t.Color, t.Troops)
}

// Registry is the ordered collection of territories of a game. It is sized
// once at setup and never grows or shrinks afterwards.
type Registry struct {
	territories []*Territory
}

func NewRegistry(territories ...*Territory) *Registry {
	ts := make([]*Territory, len(territories))
	copy(ts, territories)
	return &Registry{territories: ts}
}

func (r *Registry) Len() int {
	return len(r.territories)
}

// At returns the territory at the 0-based index i, or nil when out of range.
func (r *Registry) At(i int) *Territory {
	if i < 0 || i >= len(r.territories) {
		return nil
	}
	return r.territories[i]
}

// Snapshot returns a copy of every territory for read-only consumers.
func (r *Registry) Snapshot() []Territory {
	snapshot := make([]Territory, len(r.territories))
	for i, t := range r.territories {
		snapshot[i] = *t
	}
	return snapshot
}

// CountByColor counts the territories owned by color.
func (r *Registry) CountByColor(color string) int {
	return r.CountOwned(color, 0)
}

// CountOwned counts the territories owned by color holding at least minTroops.
func (r *Registry) CountOwned(color string, minTroops int) int {
	count := 0
	for _, t := range r.territories {
		if t.Color == color && t.Troops >= minTroops {
			count++
		}
	}
	return count
}

// IsConquered reports whether every territory shares the color of the first
// one. Maps with zero or one territory are conquered by definition.
func (r *Registry) IsConquered() bool {
	if len(r.territories) <= 1 {
		return true
	}
	color := r.territories[0].Color
	for _, t := range r.territories[1:] {
		if t.Color != color {
			return false
		}
	}
	return true
}

// Conqueror returns the color of the first territory, which is the winning
// color whenever IsConquered holds on a non-empty map.
func (r *Registry) Conqueror() string {
	if len(r.territories) == 0 {
		return ""
	}
	return r.territories[0].Color
}
