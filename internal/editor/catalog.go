package editor

import (
	"github.com/thoreinstein/openin/internal/errors"
)

// Variant identifies one supported editor.
type Variant string

// Supported editors.
const (
	VSCode         Variant = "VSCode"
	Atom           Variant = "Atom"
	Sublime        Variant = "Sublime"
	VSCodium       Variant = "VSCodium"
	BBEdit         Variant = "BBEdit"
	VSCodeInsiders Variant = "VSCodeInsiders"
	TextMate       Variant = "TextMate"
	CotEditor      Variant = "CotEditor"
	MacVim         Variant = "MacVim"
	PhpStorm       Variant = "PhpStorm"
)

// Sentinel errors for catalog lookups.
var (
	// ErrUnknownEditorName is returned when a display name is not in the catalog.
	ErrUnknownEditorName = errors.New("unknown editor name")

	// ErrUnknownVariant is returned when a variant identifier is not in the catalog.
	ErrUnknownVariant = errors.New("unknown editor variant")
)

type entry struct {
	variant     Variant
	displayName string
	bundleID    string
}

// catalog is ordered; Variants returns entries in this order.
var catalog = []entry{
	{VSCode, "Visual Studio Code", "com.microsoft.VSCode"},
	{Atom, "Atom", "com.github.atom"},
	{Sublime, "Sublime Text", "com.sublimetext.3"},
	{VSCodium, "VSCodium", "com.visualstudio.code.oss"},
	{BBEdit, "BBEdit", "com.barebones.bbedit"},
	{VSCodeInsiders, "Visual Studio Code - Insiders", "com.microsoft.VSCodeInsiders"},
	{TextMate, "TextMate", "com.macromates.TextMate"},
	{CotEditor, "CotEditor", ""},
	{MacVim, "MacVim", ""},
	{PhpStorm, "PhpStorm", ""},
}

var (
	byVariant  map[Variant]entry
	byFullName map[string]Variant
)

func init() {
	byVariant = make(map[Variant]entry, len(catalog))
	byFullName = make(map[string]Variant, len(catalog))
	for _, e := range catalog {
		if _, dup := byVariant[e.variant]; dup {
			panic("editor: duplicate variant " + string(e.variant))
		}
		if _, dup := byFullName[e.displayName]; dup {
			panic("editor: duplicate display name " + e.displayName)
		}
		byVariant[e.variant] = e
		byFullName[e.displayName] = e.variant
	}
}

// Variants returns every supported editor in catalog order.
func Variants() []Variant {
	out := make([]Variant, len(catalog))
	for i, e := range catalog {
		out[i] = e.variant
	}
	return out
}

// DisplayNames returns the display name of every supported editor in catalog order.
func DisplayNames() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.displayName
	}
	return out
}

// ByFullName returns the variant whose display name is exactly name.
// The match is case-sensitive and no whitespace is trimmed.
func ByFullName(name string) (Variant, bool) {
	v, ok := byFullName[name]
	return v, ok
}

// Resolve returns the variant whose display name is exactly name.
// Unknown names return an error wrapping ErrUnknownEditorName.
func Resolve(name string) (Variant, error) {
	v, ok := ByFullName(name)
	if !ok {
		return "", errors.Wrapf(ErrUnknownEditorName, "%q", name)
	}
	return v, nil
}

// ParseVariant returns the variant with the given short identifier (e.g. "Sublime").
func ParseVariant(id string) (Variant, error) {
	v := Variant(id)
	if !v.Valid() {
		return "", errors.Wrapf(ErrUnknownVariant, "%q", id)
	}
	return v, nil
}

// Valid reports whether v is a member of the catalog.
func (v Variant) Valid() bool {
	_, ok := byVariant[v]
	return ok
}

// String returns the short identifier.
func (v Variant) String() string {
	return string(v)
}

// DisplayName returns the full product name, or "" for an invalid variant.
func (v Variant) DisplayName() string {
	return byVariant[v].displayName
}

// BundleIdentifier returns the application bundle identifier.
// An empty string means the identifier is unknown, not that the lookup failed.
func (v Variant) BundleIdentifier() string {
	return byVariant[v].bundleID
}

// HasBundleIdentifier reports whether the bundle identifier is known.
func (v Variant) HasBundleIdentifier() bool {
	return v.BundleIdentifier() != ""
}
