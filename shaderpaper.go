// Package shaderpaper holds the build metadata shared by the command line
// tools.
package shaderpaper

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed shaderpaper.toml
var DefaultConfig string
