// Package lists embeds the sample property lists shipped with the demo.
package lists

import "embed"

//go:embed *.yaml
var FS embed.FS
