package config

import (
	"strconv"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidLogFormat indicates log_format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrUnknownKey indicates a key openin does not understand.
	ErrUnknownKey = errors.New("unknown config key")
)

// Validate checks cfg and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: KeyVersion, Value: strconv.Itoa(cfg.Version), Err: ErrUnsupportedVersion})
	}

	if _, err := editor.Resolve(cfg.Editor); err != nil {
		errs = append(errs, &FieldError{Field: KeyEditor, Value: cfg.Editor, Err: editor.ErrUnknownEditorName})
	}

	switch logging.Format(cfg.LogFormat) {
	case logging.FormatText, logging.FormatJSON, "":
	default:
		errs = append(errs, &FieldError{Field: KeyLogFormat, Value: cfg.LogFormat, Err: ErrInvalidLogFormat})
	}

	return errs
}

// FieldError reports an invalid value for one config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
