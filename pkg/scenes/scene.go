package scenes

import (
	"github.com/gonewx/confetti/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene         = (*ContactScene)(nil)
	_ game.Teardown = (*ContactScene)(nil)
)
