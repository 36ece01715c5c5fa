// Package assets embeds the default game data: asteroid shapes and
// the level progression. Config can point at external files instead.
package assets

import _ "embed"

// Asteroids holds the default shape catalog. Each line is a polygon:
// vertex coordinate pairs followed by the shape's default scale.
//
//go:embed asteroids.txt
var Asteroids []byte

// Levels holds the default level progression. Each line is one level:
// four size weights, the spawn budget and the min/max spawn interval.
//
//go:embed levels.txt
var Levels []byte
