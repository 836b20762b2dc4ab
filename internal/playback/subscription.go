package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	PositionChanged <-chan PositionChange
	MeterChanged    <-chan MeterChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	positionCh chan PositionChange
	meterCh    chan MeterChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		meterCh:    make(chan MeterChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.PositionChanged = s.positionCh
	s.MeterChanged = s.meterCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers an event without blocking. Events are dropped when the
// subscriber's buffer is full.
func (s *Subscription) send(ev any) {
	switch e := ev.(type) {
	case StateChange:
		trySend(s.stateCh, e)
	case TrackChange:
		trySend(s.trackCh, e)
	case QueueChange:
		trySend(s.queueCh, e)
	case ModeChange:
		trySend(s.modeCh, e)
	case PositionChange:
		trySend(s.positionCh, e)
	case MeterChange:
		trySend(s.meterCh, e)
	case ErrorEvent:
		trySend(s.errorCh, e)
	}
}

func trySend[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}
