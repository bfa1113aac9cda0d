// Package logger provides structured logging for streamkit built on zerolog.
//
// Components obtain a tagged logger via WithComponent and log with
// variadic field maps:
//
//	log := logger.WithComponent("forker")
//	log.Warn("fork buffer full, dropping item", logger.Fields("fork", id))
//
// A process-wide global logger backs the package-level Debug/Info/Warn/Error
// functions; libraries that want isolation construct their own via New.
package logger
