// Package app implements the terminal UI of the player.
package app

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/keymap"
	"github.com/llehouerou/pulse/internal/playback"
	"github.com/llehouerou/pulse/internal/ui/visualizer"
)

// SeekStep is the distance moved by the seek keys.
const SeekStep = 5 * time.Second

const visualizerRows = 4

// Engine is the part of the playback engine the UI drives.
type Engine interface {
	TogglePlayPause()
	Stop()
	Next()
	Previous()
	SeekBy(delta time.Duration)
	ToggleShuffle()
	CycleRepeatMode()
	Snapshot() playback.Snapshot
	Subscribe() *playback.Subscription
}

var _ Engine = (*playback.Engine)(nil)

// Model is the root application model.
type Model struct {
	engine     Engine
	sub        *playback.Subscription
	keys       *keymap.Resolver
	logger     *zap.Logger
	visualizer visualizer.Model
	snapshot   playback.Snapshot
	width      int
	height     int
}

// New creates the model and subscribes to engine events. A nil rng seeds
// the visualizer randomly.
func New(engine Engine, logger *zap.Logger, rng *rand.Rand) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		engine:     engine,
		sub:        engine.Subscribe(),
		keys:       keymap.NewResolver(keymap.Default),
		logger:     logger.Named("ui"),
		visualizer: visualizer.New(visualizerRows, rng),
		snapshot:   engine.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.WatchEvents()
}
