package static

import "embed"

// FS exposes the directory stylesheet and script for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
