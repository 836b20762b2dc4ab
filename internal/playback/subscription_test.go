package playback

import (
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/llehouerou/pulse/internal/playlist"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()
		track := playlist.NewTrack("Title", "Artist", "a.mp3")

		sub.send(StateChange{Previous: StateStopped, Current: StatePlaying})
		sub.send(TrackChange{Index: 1, Current: &track})
		sub.send(PositionChange{Position: 30 * time.Second})
		sub.send(QueueChange{Index: 2, Tracks: []playlist.Track{track}})
		sub.send(ModeChange{RepeatMode: RepeatAll, Shuffle: true})
		sub.send(MeterChange{Position: time.Second, Power: 0.5})
		sub.send(ErrorEvent{Operation: "load", Err: errors.New("boom")})

		if e := <-sub.StateChanged; e.Current != StatePlaying {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}
		if tr := <-sub.TrackChanged; tr.Index != 1 || tr.Current.ID != track.ID {
			t.Errorf("TrackChanged = %+v", tr)
		}
		if pos := <-sub.PositionChanged; pos.Position != 30*time.Second {
			t.Errorf("PositionChanged.Position = %v, want 30s", pos.Position)
		}
		if q := <-sub.QueueChanged; q.Index != 2 || len(q.Tracks) != 1 {
			t.Errorf("QueueChanged = %+v", q)
		}
		if m := <-sub.ModeChanged; m.RepeatMode != RepeatAll || !m.Shuffle {
			t.Errorf("ModeChanged = %+v", m)
		}
		if m := <-sub.MeterChanged; m.Power != 0.5 {
			t.Errorf("MeterChanged.Power = %v, want 0.5", m.Power)
		}
		if e := <-sub.Error; e.Operation != "load" {
			t.Errorf("Error.Operation = %q, want load", e.Operation)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.send(StateChange{})
	}

	count := 0
	for {
		select {
		case <-sub.StateChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}

func TestSubscription_IgnoresUnknownEvents(t *testing.T) {
	sub := newSubscription()
	sub.send("not an event")

	select {
	case <-sub.StateChanged:
		t.Error("unexpected event")
	default:
	}
}
