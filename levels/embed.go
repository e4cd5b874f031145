// Package levels embeds the level files shipped with the game.
package levels

import _ "embed"

//go:embed cave.yaml
var Cave []byte
