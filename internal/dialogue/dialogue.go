// Package dialogue implements the UI modes of the game (menu, match,
// game over) and the fixed-rate loop that drives the active one.
package dialogue

import (
	"math/rand"
	"time"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"

	"github.com/lanNo19/aposd-pong/internal/config"
	"github.com/lanNo19/aposd-pong/internal/render"
)

// Dialogue describes one UI mode driven by the Master.
type Dialogue interface {
	// Mount is called once when the dialogue becomes active.
	Mount() error
	// Unmount is called when the dialogue is replaced or the loop stops.
	Unmount()
	// HandleKey reacts to a single keyboard event.
	HandleKey(ev termbox.Event)
	// Refresh advances and redraws the dialogue, called once per tick.
	Refresh(dt time.Duration)
	// Name returns a readable dialogue name.
	Name() string
}

// Deps are shared dependencies handed to every dialogue.
type Deps struct {
	Master *Master
	Screen render.Screen
	Drawer *render.Drawer
	Stars  *render.Starfield
	Config config.Config
	Rnd    *rand.Rand
	Logger *zap.SugaredLogger
}
