// Package editor is the catalog of supported code editors.
//
// Every editor is a [Variant] with a display name, a bundle identifier and a
// generated open script. The catalog is a fixed table; all lookups are pure
// and safe for concurrent use.
//
//	v, err := editor.Resolve("Sublime Text")
//	if err != nil {
//	    return err // wraps editor.ErrUnknownEditorName
//	}
//	v.BundleIdentifier()            // "com.sublimetext.3"
//	v.OpenScript("/Users/x/project") // open -a Sublime\ Text '/Users/x/project'
//
// An empty bundle identifier means the identifier is unknown and callers
// must fall back to launching by name.
package editor
