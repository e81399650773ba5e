// Package logging configures the process-wide slog logger used by the
// bistro binaries.
//
// Every record is emitted as JSON on stderr and carries the "module" and
// "version" attributes of the binary that produced it. At debug level the
// handler also records the source location of the call.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any
// letter case. Anything else resolves to info.
//
// # Usage
//
// The CLI installs the default logger from its --log-level flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("bistro", version, "debug")
//	slog.Debug("course prepared", "cuisine", "italian", "course", "dessert")
//
// The daemon reads LOG_LEVEL instead:
//
//	logging.SetDefaultStructuredLogger("bistrod", version)
//
// http.Server.ErrorLog expects a *log.Logger; NewLogLogger returns one that
// forwards to the default slog handler:
//
//	srv.ErrorLog = logging.NewLogLogger(slog.LevelWarn, false)
//
// A line produced by the daemon looks like:
//
//	{"time":"2025-01-15T10:30:00Z","level":"INFO","msg":"order placed","module":"bistrod","version":"v0.3.0","cuisine":"mexican"}
package logging
