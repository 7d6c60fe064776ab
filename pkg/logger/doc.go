// Package logger provides a small factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions. These options
// select the output format (text or json), the minimum level, the output
// writer, and static attributes applied to every record.
//
// Helper constructors such as Name, Kind, Count and Error live in attr.go and
// keep attribute naming consistent across the validation engine.
//
// # Usage
//
//	import "github.com/dmitrymomot/requirements/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("billing")),
//	)
//	log.Debug("validation failure recorded", logger.Name("age"), logger.Kind("illegal argument"))
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
//
// Discard returns a logger that drops every record; it is the default logger
// of the validation engine.
package logger
