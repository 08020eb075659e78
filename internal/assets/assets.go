// Package assets holds files embedded into the binary so shortcut creation
// works without any external resources installed alongside the tool.
package assets

import (
	_ "embed"
)

// DefaultIcon is the icon applied to shortcuts whose descriptor does not name
// one. Standard .icns container, copied into each bundle's Resources folder.
//
//go:embed default.icns
var DefaultIcon []byte
