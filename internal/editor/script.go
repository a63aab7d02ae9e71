package editor

import "strings"

// EscapeName renders an application name as a single shell word by escaping
// each space with a backslash.
func EscapeName(name string) string {
	return strings.ReplaceAll(name, " ", `\ `)
}

// QuotePath renders path as a single-quoted POSIX shell argument.
// Embedded single quotes are closed, escaped and reopened ('\'').
func QuotePath(path string) string {
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}

// OpenScript returns the shell command that opens path in the editor:
//
//	open -a <escaped-display-name> <quoted-path>
//
// Neither the application nor the path is checked for existence.
func (v Variant) OpenScript(path string) string {
	return "open -a " + EscapeName(v.DisplayName()) + " " + QuotePath(path)
}

// AppleScript returns a Finder script that opens the current Finder selection
// in the editor. The first selected item wins; with nothing selected the front
// window's folder is used, and the desktop when no window is open.
func (v Variant) AppleScript() string {
	cmd := appleScriptString("open -a " + EscapeName(v.DisplayName()) + " ")

	var b strings.Builder
	b.WriteString(FinderPathScript)
	b.WriteString("\n")
	b.WriteString(`do shell script "` + cmd + `" & quoted form of thePath`)
	b.WriteString("\n")
	return b.String()
}

// FinderPathScript leaves the POSIX path to act on in thePath.
const FinderPathScript = `tell application "Finder"
	set finderSelList to selection as alias list

	if finderSelList ≠ {} then
		set theSelected to item 1 of finderSelList
		set thePath to POSIX path of (contents of theSelected)
	else
		try
			set thePath to POSIX path of ((target of front Finder window) as text)
		on error
			set thePath to POSIX path of (path to desktop)
		end try
	end if
end tell`

// appleScriptString escapes s for use inside an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
