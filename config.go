package logmanager

// Config carries the manager's construction parameters. DefaultLevel is the
// baseline severity set applied to every subsystem context; sink and
// rotation settings mirror the daemon's logging section.
type Config struct {
	// DefaultLevel is the baseline enabled-severity set for all contexts.
	// LevelNone is valid: nothing is emitted until a tier is enabled.
	DefaultLevel Level

	ConsoleLogging bool
	FileLogging    bool

	// LogDir is where the rolling log file lives. Required when
	// FileLogging is set (or when both sinks are left disabled, since the
	// file sink is then forced on).
	LogDir string `validate:"required_if=FileLogging true"`

	LogFileMaxBackups int `validate:"gte=0"`
	LogFileMaxAgeDays int `validate:"gte=0"`
	LogFileMaxSizeMB  int `validate:"gte=0"`
	LogFileCompress   bool

	ConsoleNoColor bool
	WithTimestamp  bool
}
