package logmanager

// Emitter is the severity-gated emission surface of a managed logger.
// Daemon components that only emit (and never manage lifecycle) should
// depend on this rather than on *Logger.
type Emitter interface {
	Error() *Event
	Info() *Event
	Debug() *Event
	Raw() *Event
	Emit(lvl Level) *Event
}

var _ Emitter = (*Logger)(nil)
