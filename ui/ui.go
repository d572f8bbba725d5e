// Package ui carries the server-rendered templates and static assets.
// Embedding them keeps the binary independent of the working directory.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
