package logmanager

// levelTable maps each subsystem context to its currently enabled severity
// tiers. Every valid context is seeded with the manager-wide default at
// construction and entries are never deleted, so a lookup always resolves.
// The table carries no lock of its own; the Manager serializes access.
type levelTable struct {
	levels map[Context]Level
}

func newLevelTable(def Level) *levelTable {
	levels := make(map[Context]Level, contextCount)
	for c := Context(0); c < contextCount; c++ {
		levels[c] = def
	}
	return &levelTable{levels: levels}
}

func (t *levelTable) get(ctx Context) Level {
	return t.levels[ctx]
}

func (t *levelTable) enable(ctx Context, lvl Level) {
	t.levels[ctx] = t.levels[ctx].Enable(lvl)
}

func (t *levelTable) disable(ctx Context, lvl Level) {
	t.levels[ctx] = t.levels[ctx].Disable(lvl)
}
