// Package levels embeds the demo arenas.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS

// Default is the arena the demo starts in.
const Default = "arena.tmx"
