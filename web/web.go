// Package web holds the embedded templates and static assets for the
// marketing site and the places admin.
package web

import "embed"

//go:embed templates static
var FS embed.FS
