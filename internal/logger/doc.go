// Package logger provides logging facilities for the gitpast application.
//
// It defines the Logger interface injected into every component and the
// DefaultLogger implementation. Two kinds of output are kept apart:
//
//   - Debug records (Info, Warning, Error) are written through logrus to a log
//     file when debug logging is enabled, one text record per line with full
//     timestamps and the app/pid fields attached.
//   - User-facing lines (InfoToUser, WarningToUser, Success, StatusMessage) are
//     printed to stdout with an emoji prefix. Errors always reach stderr.
//
// # Usage
//
//	log := logger.NewWithOutput(cfg.Debug, cfg.LogFile, cfg.Verbose, os.Stdout, os.Stderr)
//	defer log.Close()
//
//	log.StatusMessage("Generating commits from %d days ago to %d days ago...", from, to)
//	log.Info("git %s", strings.Join(args, " "))
//	log.Success("Created %d commits", n)
//
// Quiet mode (verbose=false) silences StatusMessage and Warning on stdout;
// explicit user messages and errors are still shown.
//
// DefaultLogger is safe for concurrent use, although gitpast itself is
// single-threaded.
package logger
