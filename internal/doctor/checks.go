package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/editor"
)

// ConfigCheck verifies the configuration file loads and validates.
type ConfigCheck struct {
	path string
	load func(path string) (*config.Config, error)
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck checks the file at path, or the default search path when empty.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path, load: config.Load}
}

func (c *ConfigCheck) Name() string     { return "config-valid" }
func (c *ConfigCheck) Category() string { return "config" }

func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	cfg, err := c.load(c.path)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Run: openin config edit",
		}
	}

	file := config.UsedFile()
	if file == "" {
		return &CheckResult{
			Status:  SeverityInfo,
			Message: "no config file found, using defaults",
			Details: map[string]any{"editor": cfg.Editor},
			FixHint: "Run: openin config set editor \"<name>\"",
		}
	}

	return &CheckResult{
		Status:  SeverityPass,
		Message: "config is valid",
		Details: map[string]any{"file": file, "editor": cfg.Editor},
	}
}

// Detector is the part of detect.Detector the checks use.
type Detector interface {
	Detect(ctx context.Context, v editor.Variant) *detect.Result
	DetectAll(ctx context.Context) []*detect.Result
}

// EditorCheck verifies the configured editor resolves and is installed.
type EditorCheck struct {
	name     string
	detector Detector
}

var _ Check = (*EditorCheck)(nil)

// NewEditorCheck checks the editor with display name name.
func NewEditorCheck(name string, d Detector) *EditorCheck {
	return &EditorCheck{name: name, detector: d}
}

func (c *EditorCheck) Name() string     { return "configured-editor" }
func (c *EditorCheck) Category() string { return "editor" }

func (c *EditorCheck) Run(ctx context.Context) *CheckResult {
	v, err := editor.Resolve(c.name)
	if err != nil {
		return &CheckResult{
			Status:  SeverityError,
			Message: err.Error(),
			FixHint: "Run 'openin list' to see supported editors",
		}
	}

	res := c.detector.Detect(ctx, v)
	details := map[string]any{
		"variant":   string(v),
		"bundle_id": v.BundleIdentifier(),
		"method":    string(res.Method),
	}
	if !res.Installed() {
		return &CheckResult{
			Editor:  v.DisplayName(),
			Status:  SeverityWarning,
			Message: fmt.Sprintf("%s is not installed", v.DisplayName()),
			Details: details,
			FixHint: "Install it or pick another editor with: openin pick",
		}
	}

	details["path"] = res.Path
	return &CheckResult{
		Editor:  v.DisplayName(),
		Status:  SeverityPass,
		Message: fmt.Sprintf("%s found at %s", v.DisplayName(), res.Path),
		Details: details,
	}
}

// InstalledEditorsCheck reports which catalog editors are present.
type InstalledEditorsCheck struct {
	detector Detector
}

var _ Check = (*InstalledEditorsCheck)(nil)

// NewInstalledEditorsCheck creates the check.
func NewInstalledEditorsCheck(d Detector) *InstalledEditorsCheck {
	return &InstalledEditorsCheck{detector: d}
}

func (c *InstalledEditorsCheck) Name() string     { return "installed-editors" }
func (c *InstalledEditorsCheck) Category() string { return "editor" }

func (c *InstalledEditorsCheck) Run(ctx context.Context) *CheckResult {
	var installed, byName []string
	for _, r := range c.detector.DetectAll(ctx) {
		if !r.Installed() {
			continue
		}
		installed = append(installed, r.DisplayName)
		if r.BundleID == "" {
			byName = append(byName, r.DisplayName)
		}
	}

	if len(installed) == 0 {
		return &CheckResult{
			Status:  SeverityWarning,
			Message: "no supported editors found",
			FixHint: "Install one of: " + strings.Join(editor.DisplayNames(), ", "),
		}
	}

	details := map[string]any{"installed": installed}
	if len(byName) > 0 {
		// No bundle identifier is known for these, so presence rests on the bundle name alone.
		details["matched_by_name"] = byName
	}
	return &CheckResult{
		Status:  SeverityInfo,
		Message: fmt.Sprintf("%d of %d supported editors installed", len(installed), len(editor.Variants())),
		Details: details,
	}
}
