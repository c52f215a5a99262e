package game

import (
	"fmt"
	"strings"
)

// MissionKind tags the victory condition a mission checks.
type MissionKind int

const (
	UnknownMission           MissionKind = iota
	ConquerWithMinTroops                 // Own Count territories with MinTroops or more each
	ControlAllOfColor                    // Every territory on the map belongs to TargetColor
	EliminateColor                       // No territory belongs to TargetColor
	SingleTerritoryMinTroops             // One owned territory holds MinTroops or more
	ControlAtLeast                       // Own Count territories
)

var missionKindNames = map[MissionKind]string{
	ConquerWithMinTroops:     "conquer_with_min_troops",
	ControlAllOfColor:        "control_all_of_color",
	EliminateColor:           "eliminate_color",
	SingleTerritoryMinTroops: "single_territory_min_troops",
	ControlAtLeast:           "control_at_least",
}

func (k MissionKind) String() string {
	if name, ok := missionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseMissionKind converts a kind name, as printed by String, back to its kind.
func ParseMissionKind(s string) (MissionKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range missionKindNames {
		if name == s {
			return kind, nil
		}
	}
	return UnknownMission, fmt.Errorf("unknown mission kind %q", s)
}

// Mission is an immutable victory condition. Only the parameters relevant to
// its Kind are set.
type Mission struct {
	Kind        MissionKind
	Count       int
	MinTroops   int
	TargetColor string
}

// The catalog is fixed: five missions, drawn uniformly with replacement.
var catalog = []Mission{
	{Kind: ConquerWithMinTroops, Count: 3, MinTroops: 5},
	{Kind: ControlAllOfColor, TargetColor: "Verde"},
	{Kind: EliminateColor, TargetColor: "Vermelha"},
	{Kind: SingleTerritoryMinTroops, MinTroops: 10},
	// Described as capturing territories in a single round but checked as a
	// plain ownership count, with no per-round tracking.
	{Kind: ControlAtLeast, Count: 2},
}

// Catalog returns every mission a player can be assigned.
func Catalog() []Mission {
	missions := make([]Mission, len(catalog))
	copy(missions, catalog)
	return missions
}

// MissionOf looks up the catalog mission of the given kind.
func MissionOf(kind MissionKind) (Mission, bool) {
	for _, m := range catalog {
		if m.Kind == kind {
			return m, true
		}
	}
	return Mission{}, false
}

// AssignMission draws a catalog mission uniformly at random.
func AssignMission(src Source) Mission {
	return catalog[src.Intn(len(catalog))]
}

// Description is the text shown to the player holding the mission.
func (m Mission) Description() string {
	switch m.Kind {
	case ConquerWithMinTroops:
		return fmt.Sprintf("Conquer at least %d territories with %d or more troops.", m.Count, m.MinTroops)
	case ControlAllOfColor:
		return fmt.Sprintf("Control every territory of color '%s'.", m.TargetColor)
	case EliminateColor:
		return fmt.Sprintf("Completely eliminate the player of color '%s'.", m.TargetColor)
	case SingleTerritoryMinTroops:
		return fmt.Sprintf("Have at least %d troops in a single territory.", m.MinTroops)
	case ControlAtLeast:
		return fmt.Sprintf("Conquer %d territories in a row (in the same round).", m.Count)
	default:
		return "Unknown mission."
	}
}

func (m Mission) String() string {
	return m.Description()
}

// Evaluate reports whether the mission holds for the player of the given
// color. It only reads the registry.
func Evaluate(m Mission, color string, r *Registry) bool {
	switch m.Kind {
	case ConquerWithMinTroops:
		return r.CountOwned(color, m.MinTroops) >= m.Count
	case ControlAllOfColor:
		// The target color cannot win its own mission
		if color == m.TargetColor {
			return false
		}
		return r.CountByColor(m.TargetColor) == r.Len()
	case EliminateColor:
		if color == m.TargetColor {
			return false
		}
		return r.CountByColor(m.TargetColor) == 0
	case SingleTerritoryMinTroops:
		return r.CountOwned(color, m.MinTroops) > 0
	case ControlAtLeast:
		return r.CountByColor(color) >= m.Count
	default:
		return false
	}
}

// MissionWinner returns the index of the first player, in seating order,
// whose mission holds. Later players never win a tie.
func MissionWinner(players []Player, r *Registry) (int, bool) {
	for i, p := range players {
		if Evaluate(p.Mission, p.Color, r) {
			return i, true
		}
	}
	return -1, false
}
