// Package web embeds the site's static assets.
package web

import "embed"

//go:embed static
var FS embed.FS
