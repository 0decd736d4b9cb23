// Package templates embeds the site's HTML templates so the binary is
// self-contained and tests can load them from any working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
