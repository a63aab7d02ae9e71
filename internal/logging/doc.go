// Package logging configures structured logging for openin on top of
// [log/slog].
//
// Text output goes through [Handler], which colorizes levels and keys when
// the destination is a terminal. JSON output uses the standard library
// handler. [Fanout] sends records to several handlers at once, which is how
// --log-file is layered on top of the console output.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Packages that run external processes pull the logger back out with
// [FromContext]. Tests use [ForTest] so output only shows on failure.
package logging
