package nowplaying

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/notify"
	"github.com/llehouerou/pulse/internal/playback"
)

const notificationTimeout = 5000 // ms

// NotifyPublisher shows a desktop notification when a new track starts.
// Notifications are sent from a separate goroutine so a slow D-Bus call
// never holds up the engine; only the latest pending update is kept.
type NotifyPublisher struct {
	replacer *notify.Replacer
	logger   *zap.Logger

	mu     sync.Mutex
	filter changeFilter

	pending chan notify.Notification
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewNotifyPublisher starts a publisher sending through n. Call Close to stop it.
func NewNotifyPublisher(n notify.Notifier, logger *zap.Logger) *NotifyPublisher {
	p := &NotifyPublisher{
		replacer: notify.NewReplacer(n),
		logger:   logger.Named("notify"),
		pending:  make(chan notify.Notification, 1),
		done:     make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Publish implements playback.Publisher.
func (p *NotifyPublisher) Publish(np playback.NowPlaying) {
	p.mu.Lock()
	changed := p.filter.trackChanged(np)
	p.mu.Unlock()

	if !changed || np.Status != playback.StatePlaying || np.Title == "" {
		return
	}
	n := trackNotification(np)

	// Replace a notification still waiting to be sent.
	for {
		select {
		case p.pending <- n:
			return
		case <-p.done:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

func (p *NotifyPublisher) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case n := <-p.pending:
			if err := p.replacer.Send(n); err != nil {
				p.logger.Debug("send notification", zap.Error(err))
			}
		}
	}
}

// Close stops the sender and dismisses the last notification.
func (p *NotifyPublisher) Close() error {
	var err error
	p.once.Do(func() {
		close(p.done)
		p.wg.Wait()
		err = p.replacer.Dismiss()
	})
	return err
}

func trackNotification(np playback.NowPlaying) notify.Notification {
	body := np.Artist
	if np.Duration > 0 {
		body = fmt.Sprintf("%s · %s", np.Artist, formatDuration(np.Duration))
		if np.Artist == "" {
			body = formatDuration(np.Duration)
		}
	}
	return notify.Notification{
		Title:   np.Title,
		Body:    body,
		Icon:    np.Artwork,
		Timeout: notificationTimeout,
		Urgency: notify.UrgencyLow,
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
