// Package errors provides error handling conventions for the openin CLI.
//
// The package re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so call sites import a single errors package,
// and adds an ExitError type plus exit code constants for the CLI.
//
// # Sentinel Errors
//
// Packages define their own sentinels with [New] and callers check them
// using [Is]:
//
//	if errors.Is(err, editor.ErrUnknownEditorName) {
//	    // configuration error, not retryable
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown editor, bad configuration, etc.)
//   - ExitSystem (2): System-related error (shell or osascript failure, I/O)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(err, "Run 'openin list' to see supported editors")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
