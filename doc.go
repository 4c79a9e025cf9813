// Package logmanager provides runtime log management for the daemon: a
// concurrency-safe manager that creates, tracks, and destroys per-subsystem
// loggers, with independently adjustable verbosity per subsystem context.
//
// Key features
//   - Closed set of subsystem contexts; an out-of-range context is a bug
//     and is rejected at the boundary
//   - Per-context severity bitmask (error, info, debug, raw) adjustable at
//     runtime; level changes apply immediately to every live logger of
//     that context without reconstruction
//   - Lifecycle guarantee: loggers created through the manager are
//     destroyed exactly once, either explicitly or during manager teardown
//   - File rotation via lumberjack and configurable console formatting
//   - Error history enrichment: for any Err/AnErr the event includes the
//     full error chain (outermost -> root), the root cause string, and the
//     operations chain when using Station-Manager DetailedError
//
// Typical usage
//
//	mgr, err := logmanager.New(&logmanager.Config{DefaultLevel: logmanager.LevelError, ConsoleLogging: true})
//	if err != nil { panic(err) }
//	defer mgr.Destroy()
//
//	log, _ := mgr.CreateLogger(logmanager.Worker, "")
//	log.Info().Str("job_id", id).Msg("processed")
//
//	mgr.EnableLoggerLevel(logmanager.Worker, logmanager.LevelDebug)
//	log.Debug().Msg("now visible")
package logmanager
