// Package paths resolves the filesystem locations openin reads and writes.
//
// Configuration lives under the XDG config home (via github.com/adrg/xdg):
//
//	| OS      | Config file                                          |
//	|---------|------------------------------------------------------|
//	| Linux   | ~/.config/openin/config.yaml                         |
//	| macOS   | ~/Library/Application Support/openin/config.yaml     |
//
// Applications are looked up in /Applications and ~/Applications, in that
// order.
package paths
