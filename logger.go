package logmanager

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Logger emits messages tagged with a severity on behalf of one subsystem
// context. Its effective threshold is the manager's level table entry for
// that context, looked up live on each emission, so a runtime level change
// applies immediately without recreating the logger.
//
// Loggers are created through Manager.CreateLogger and must be released
// through Manager.DestroyLogger or the manager's own Destroy; a destroyed
// logger silently discards everything.
type Logger struct {
	mgr       *Manager
	context   Context
	name      string
	zl        zerolog.Logger
	destroyed atomic.Bool
}

// Context returns the subsystem context the logger is bound to.
func (l *Logger) Context() Context {
	return l.context
}

// Name returns the display label: the name given at creation, or the
// context's display name if none was.
func (l *Logger) Name() string {
	return l.name
}

// Destroyed reports whether the logger has been released, either explicitly
// or during manager teardown.
func (l *Logger) Destroyed() bool {
	return l.destroyed.Load()
}

// Emit returns an event for a single severity tier. The event is a no-op
// unless the tier is currently enabled for the logger's context.
func (l *Logger) Emit(lvl Level) *Event {
	if l == nil || l.destroyed.Load() {
		return newEvent(nil)
	}
	if !l.mgr.levelEnabled(l.context, lvl) {
		return newEvent(nil)
	}

	switch lvl {
	case LevelError:
		return newEvent(l.zl.Error())
	case LevelInfo:
		return newEvent(l.zl.Info())
	case LevelDebug:
		return newEvent(l.zl.Debug())
	case LevelRaw:
		// raw payload dumps ride zerolog's trace tier
		return newEvent(l.zl.Trace())
	default:
		// compound or out-of-range tier, nothing sensible to emit
		return newEvent(nil)
	}
}

// Error returns an event at the error tier.
func (l *Logger) Error() *Event {
	return l.Emit(LevelError)
}

// Info returns an event at the info tier.
func (l *Logger) Info() *Event {
	return l.Emit(LevelInfo)
}

// Debug returns an event at the debug tier.
func (l *Logger) Debug() *Event {
	return l.Emit(LevelDebug)
}

// Raw returns an event at the raw tier, used for wire payload dumps.
func (l *Logger) Raw() *Event {
	return l.Emit(LevelRaw)
}

// destroy marks the logger released. Returns false if it already was, so
// the caller can guarantee exactly-once destruction.
func (l *Logger) destroy() bool {
	return l.destroyed.CompareAndSwap(false, true)
}
