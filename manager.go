package logmanager

import (
	"io"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Manager is the façade over the level table and the logger registry. It is
// the single owner of shared mutable state and is safe for concurrent use:
// one exclusive lock protects both structures, and every operation is a
// short synchronous critical section.
//
// A Manager is constructed once with New and torn down once with Destroy,
// at which point every still-registered logger is destroyed as a cleanup
// guarantee. Operations on a destroyed Manager fail fast with a
// "manager destroyed" error rather than corrupting state.
type Manager struct {
	mu         sync.Mutex
	cfg        Config
	table      *levelTable
	reg        *registry
	base       zerolog.Logger
	fileWriter *lumberjack.Logger
	destroyed  atomic.Bool
}

// New constructs a Manager with cfg's DefaultLevel applied to every
// subsystem context. If both sinks are disabled the file sink is enabled.
func New(cfg *Config) (*Manager, error) {
	const op errors.Op = "logmanager.New"

	if cfg == nil {
		return nil, errors.New(op).Msg(errMsgNilConfig)
	}

	m := &Manager{cfg: *cfg}

	// If both writers are disabled, enable the file writer
	if !m.cfg.ConsoleLogging && !m.cfg.FileLogging {
		m.cfg.FileLogging = true
	}

	if err := validateConfig(&m.cfg); err != nil {
		return nil, err
	}

	writers, err := m.initializeWriters()
	if err != nil {
		return nil, errors.New(op).Err(err).Msg("failed to initialize log sinks")
	}

	// The zerolog side never filters; the level table is the only gate.
	base := zerolog.New(io.MultiWriter(writers...)).Level(zerolog.TraceLevel)
	if m.cfg.WithTimestamp {
		base = base.With().Timestamp().Logger()
	}

	m.base = base
	m.table = newLevelTable(m.cfg.DefaultLevel)
	m.reg = newRegistry()
	return m, nil
}

// CreateLogger constructs a logger bound to ctx, registers it, and returns
// the handle. An empty name falls back to the context's display name. The
// logger's effective severity is the level table entry for ctx, read live
// on each emission.
func (m *Manager) CreateLogger(ctx Context, name string) (*Logger, error) {
	const op errors.Op = "logmanager.Manager.CreateLogger"

	if !ctx.valid() {
		return nil, errors.New(op).Msg(errMsgInvalidContext)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return nil, errors.New(op).Msg(errMsgManagerDestroyed)
	}

	zctx := m.base.With().Str("subsystem", ctx.String())
	label := name
	if label == emptyString {
		label = ctx.String()
	} else {
		zctx = zctx.Str("name", name)
	}

	l := &Logger{
		mgr:     m,
		context: ctx,
		name:    label,
		zl:      zctx.Logger(),
	}
	m.reg.insert(l)
	return l, nil
}

// DestroyLogger removes l from the registry and releases it. A handle that
// is nil, foreign, or already destroyed reports a "not found" error — a
// deliberate policy so mismatched create/destroy pairs surface early — and
// never disturbs other live loggers. The handle must not be reused after
// this call.
func (m *Manager) DestroyLogger(l *Logger) error {
	const op errors.Op = "logmanager.Manager.DestroyLogger"

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return errors.New(op).Msg(errMsgManagerDestroyed)
	}
	if l == nil || !m.reg.remove(l) {
		return errors.New(op).Msg(errMsgLoggerNotFound)
	}

	l.destroy()
	return nil
}

// LoggerLevel returns the currently enabled severity set for ctx. Invalid
// contexts (and a destroyed manager) read as LevelNone; every valid context
// otherwise resolves to at least the construction-time default.
func (m *Manager) LoggerLevel(ctx Context) Level {
	if !ctx.valid() {
		return LevelNone
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return LevelNone
	}
	return m.table.get(ctx)
}

// EnableLoggerLevel adds lvl to the enabled set for ctx. The change mutates
// the shared table entry, so every existing logger for ctx observes it on
// its next emission. Idempotent.
func (m *Manager) EnableLoggerLevel(ctx Context, lvl Level) error {
	const op errors.Op = "logmanager.Manager.EnableLoggerLevel"

	if !ctx.valid() {
		return errors.New(op).Msg(errMsgInvalidContext)
	}
	if !lvl.valid() {
		return errors.New(op).Msg(errMsgInvalidLevel)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return errors.New(op).Msg(errMsgManagerDestroyed)
	}
	m.table.enable(ctx, lvl)
	return nil
}

// DisableLoggerLevel removes lvl from the enabled set for ctx. Idempotent.
func (m *Manager) DisableLoggerLevel(ctx Context, lvl Level) error {
	const op errors.Op = "logmanager.Manager.DisableLoggerLevel"

	if !ctx.valid() {
		return errors.New(op).Msg(errMsgInvalidContext)
	}
	if !lvl.valid() {
		return errors.New(op).Msg(errMsgInvalidLevel)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return errors.New(op).Msg(errMsgManagerDestroyed)
	}
	m.table.disable(ctx, lvl)
	return nil
}

// ActiveLoggers returns the number of loggers currently registered.
func (m *Manager) ActiveLoggers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.size()
}

// Destroy tears down the manager: every still-registered logger is
// destroyed exactly once and the file sink is closed. Callers are not
// required to release loggers individually before calling it. A second
// call reports a "manager destroyed" error without touching anything.
func (m *Manager) Destroy() error {
	const op errors.Op = "logmanager.Manager.Destroy"

	if !m.destroyed.CompareAndSwap(false, true) {
		return errors.New(op).Msg(errMsgManagerDestroyed)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Remaining loggers are force-destroyed without individual error
	// reporting; destruction order across contexts is unspecified.
	for _, l := range m.reg.drain() {
		l.destroy()
	}

	if m.fileWriter != nil {
		if err := m.fileWriter.Close(); err != nil {
			return errors.New(op).Err(err).Msg("failed to close log file sink")
		}
	}
	return nil
}

// levelEnabled is the live table read behind every emission.
func (m *Manager) levelEnabled(ctx Context, lvl Level) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.destroyed.Load() {
		return false
	}
	return m.table.get(ctx).Has(lvl)
}

// IsLoggerNotFound reports whether err is a DestroyLogger "not found"
// condition.
func IsLoggerNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), errMsgLoggerNotFound)
}

// IsManagerDestroyed reports whether err came from an operation on a
// destroyed manager.
func IsManagerDestroyed(err error) bool {
	return err != nil && strings.Contains(err.Error(), errMsgManagerDestroyed)
}

// IsInvalidContext reports whether err is an out-of-range context rejection.
func IsInvalidContext(err error) bool {
	return err != nil && strings.Contains(err.Error(), errMsgInvalidContext)
}
