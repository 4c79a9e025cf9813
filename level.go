package logmanager

import "strings"

// Level is a bitmask of enabled severity tiers. A context's enabled
// severities are the union of tiers explicitly enabled minus any explicitly
// disabled; both operations are idempotent.
type Level uint8

const (
	LevelError Level = 1 << iota
	LevelInfo
	LevelDebug
	LevelRaw
)

const (
	LevelNone Level = 0
	LevelAll  Level = LevelError | LevelInfo | LevelDebug | LevelRaw
)

// Enable returns the union of l and lvl.
func (l Level) Enable(lvl Level) Level {
	return l | lvl
}

// Disable returns l with every tier of lvl removed.
func (l Level) Disable(lvl Level) Level {
	return l &^ lvl
}

// Has reports whether every tier of lvl is enabled in l.
func (l Level) Has(lvl Level) bool {
	return lvl != LevelNone && l&lvl == lvl
}

func (l Level) valid() bool {
	return l&^LevelAll == 0
}

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelError, "error"},
	{LevelInfo, "info"},
	{LevelDebug, "debug"},
	{LevelRaw, "raw"},
}

// String renders the enabled tiers as a "|"-separated list, e.g.
// "error|debug". The zero value renders as "none", the full set as "all".
func (l Level) String() string {
	if l == LevelNone {
		return "none"
	}
	if l == LevelAll {
		return "all"
	}
	var parts []string
	for _, n := range levelNames {
		if l.Has(n.level) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
