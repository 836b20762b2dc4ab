package nowplaying

import (
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/playback"
)

// LogPublisher logs track and status changes.
type LogPublisher struct {
	logger *zap.Logger

	mu     sync.Mutex
	filter changeFilter
}

// NewLogPublisher creates a publisher logging to logger.
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("nowplaying")}
}

// Publish implements playback.Publisher.
func (p *LogPublisher) Publish(np playback.NowPlaying) {
	p.mu.Lock()
	statusChanged := p.filter.statusChanged(np)
	trackChanged := p.filter.trackChanged(np)
	p.mu.Unlock()

	if trackChanged && np.Status == playback.StatePlaying {
		p.logger.Info("now playing",
			zap.String("title", np.Title),
			zap.String("artist", np.Artist),
			zap.Duration("duration", np.Duration))
		return
	}
	if statusChanged {
		p.logger.Info("playback status",
			zap.Stringer("status", np.Status),
			zap.String("title", np.Title),
			zap.Duration("elapsed", np.Elapsed))
	}
}
