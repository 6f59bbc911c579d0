package static

import "embed"

// FS exposes stylesheets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
