// Package detect reports which catalog editors are installed.
//
// Editors with a known bundle identifier are located through Spotlight
// (mdfind). Editors without one, or when Spotlight is unavailable, are looked
// up by display name as <dir>/<name>.app in the application folders.
package detect

import (
	"context"
	"os"
	"strings"

	"github.com/thoreinstein/openin/internal/editor"
	"github.com/thoreinstein/openin/internal/logging"
	"github.com/thoreinstein/openin/internal/paths"
	"github.com/thoreinstein/openin/internal/shell"
)

// Status indicates the installation state of an editor.
type Status string

const (
	// StatusInstalled indicates the application bundle was found.
	StatusInstalled Status = "installed"

	// StatusNotInstalled indicates no application bundle was found.
	StatusNotInstalled Status = "not_installed"
)

// Method records how an editor was located.
type Method string

const (
	MethodBundleID Method = "bundle_id"
	MethodName     Method = "name"
)

// mdfindPath is the Spotlight query tool.
const mdfindPath = "mdfind"

// Result describes one editor's installation state.
type Result struct {
	Variant     editor.Variant `json:"variant"`
	DisplayName string         `json:"display_name"`
	BundleID    string         `json:"bundle_id"`
	Status      Status         `json:"status"`
	Method      Method         `json:"method"`

	// Path is the application bundle when Status is StatusInstalled.
	Path string `json:"path,omitempty"`
}

// Installed reports whether the editor was found.
func (r *Result) Installed() bool {
	return r.Status == StatusInstalled
}

// Detector locates editor application bundles.
type Detector struct {
	runner  shell.Runner
	appDirs []string
}

// New returns a Detector that queries Spotlight through r and searches
// paths.ApplicationDirs by name.
func New(r shell.Runner) *Detector {
	return &Detector{runner: r, appDirs: paths.ApplicationDirs()}
}

// NewWithDirs returns a Detector that searches dirs by name.
func NewWithDirs(r shell.Runner, dirs []string) *Detector {
	return &Detector{runner: r, appDirs: dirs}
}

// Detect returns the installation state of v.
func (d *Detector) Detect(ctx context.Context, v editor.Variant) *Result {
	res := &Result{
		Variant:     v,
		DisplayName: v.DisplayName(),
		BundleID:    v.BundleIdentifier(),
		Status:      StatusNotInstalled,
		Method:      MethodName,
	}

	if v.HasBundleIdentifier() {
		path, ok := d.byBundleID(ctx, v.BundleIdentifier())
		if ok {
			res.Method = MethodBundleID
			if path != "" {
				res.Status = StatusInstalled
				res.Path = path
			}
			return res
		}
	}

	if path := d.byName(v.DisplayName()); path != "" {
		res.Status = StatusInstalled
		res.Path = path
	}
	return res
}

// DetectAll returns results for every catalog editor in catalog order.
func (d *Detector) DetectAll(ctx context.Context) []*Result {
	variants := editor.Variants()
	results := make([]*Result, 0, len(variants))
	for _, v := range variants {
		results = append(results, d.Detect(ctx, v))
	}
	return results
}

// DetectInstalled returns only the installed editors, in catalog order.
func (d *Detector) DetectInstalled(ctx context.Context) []*Result {
	all := d.DetectAll(ctx)
	installed := make([]*Result, 0, len(all))
	for _, r := range all {
		if r.Installed() {
			installed = append(installed, r)
		}
	}
	return installed
}

// byBundleID asks Spotlight for the bundle. ok is false when the query
// itself failed and the caller should fall back to a name lookup.
func (d *Detector) byBundleID(ctx context.Context, bundleID string) (path string, ok bool) {
	query := "kMDItemCFBundleIdentifier == '" + bundleID + "'"
	out, err := d.runner.Run(ctx, mdfindPath, query)
	if err != nil {
		logging.FromContext(ctx).Debug("spotlight query failed", "bundle_id", bundleID, "error", err)
		return "", false
	}
	first, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(first), true
}

func (d *Detector) byName(name string) string {
	for _, dir := range d.appDirs {
		p := paths.AppBundle(dir, name)
		if dirExists(p) {
			return p
		}
	}
	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
